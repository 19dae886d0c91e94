package ecs

// DenseFirstBlock returns the first block of d's backing array, or nil.
func DenseFirstBlock[C any](d *Dense[C]) *[denseBlockSize]C {
	if len(d.blocks) == 0 {
		return nil
	}
	return &d.blocks[0]
}

func DenseBlockCap[C any](d *Dense[C]) int {
	return cap(d.blocks)
}
