package diskavl

// AVL maintenance, expressed entirely over file offsets. A rotation
// rewrites three pointer fields (the parent's or the header's root slot,
// the axis's inner child, the promoted child's link back to the axis) and
// then recomputes exactly the two heights whose subtrees changed, promoted
// child last since the axis is now beneath it.

// rotateRight promotes the left child of axis. parent is the offset of the
// node whose child slot currently holds axis, or NilOff when axis is the
// root, in which case the header root field is rewritten instead.
func (st *store) rotateRight(axis, parent int64) error {
	pivot, err := st.left(axis)
	if err != nil {
		return err
	}
	if err := st.relink(axis, parent, pivot); err != nil {
		return err
	}
	inner, err := st.right(pivot)
	if err != nil {
		return err
	}
	if err := st.setLeft(axis, inner); err != nil {
		return err
	}
	if err := st.setRight(pivot, axis); err != nil {
		return err
	}
	if err := st.recomputeHeight(axis); err != nil {
		return err
	}
	return st.recomputeHeight(pivot)
}

// rotateLeft promotes the right child of axis; mirror of rotateRight.
func (st *store) rotateLeft(axis, parent int64) error {
	pivot, err := st.right(axis)
	if err != nil {
		return err
	}
	if err := st.relink(axis, parent, pivot); err != nil {
		return err
	}
	inner, err := st.left(pivot)
	if err != nil {
		return err
	}
	if err := st.setRight(axis, inner); err != nil {
		return err
	}
	if err := st.setLeft(pivot, axis); err != nil {
		return err
	}
	if err := st.recomputeHeight(axis); err != nil {
		return err
	}
	return st.recomputeHeight(pivot)
}

// relink points whichever slot referenced axis (a parent child pointer, or
// the header root field) at the promoted child.
func (st *store) relink(axis, parent, promoted int64) error {
	if parent == NilOff {
		return st.setRoot(promoted)
	}
	l, err := st.left(parent)
	if err != nil {
		return err
	}
	if l == axis {
		return st.setLeft(parent, promoted)
	}
	return st.setRight(parent, promoted)
}

// recomputeHeight stores 1+max(height(left), height(right)), with the
// -1-for-absent convention making a leaf come out at 0.
func (st *store) recomputeHeight(off int64) error {
	l, err := st.left(off)
	if err != nil {
		return err
	}
	r, err := st.right(off)
	if err != nil {
		return err
	}
	hl, err := st.height(l)
	if err != nil {
		return err
	}
	hr, err := st.height(r)
	if err != nil {
		return err
	}
	return st.setHeight(off, 1+max(hl, hr))
}

// rebalancePath ascends from the insertion site to the root, refreshing
// every ancestor height and rotating wherever the balance invariant broke.
// The equal-grand-child-heights case takes the single rotation.
func (st *store) rebalancePath(path []int64) error {
	for i := len(path) - 1; i >= 0; i-- {
		n := path[i]
		parent := NilOff
		if i > 0 {
			parent = path[i-1]
		}

		l, err := st.left(n)
		if err != nil {
			return err
		}
		r, err := st.right(n)
		if err != nil {
			return err
		}
		hl, err := st.height(l)
		if err != nil {
			return err
		}
		hr, err := st.height(r)
		if err != nil {
			return err
		}

		if diff := hl - hr; diff >= -1 && diff <= 1 {
			if err := st.setHeight(n, 1+max(hl, hr)); err != nil {
				return err
			}
			continue
		}

		if hl > hr {
			ll, err := st.left(l)
			if err != nil {
				return err
			}
			lr, err := st.right(l)
			if err != nil {
				return err
			}
			hll, err := st.height(ll)
			if err != nil {
				return err
			}
			hlr, err := st.height(lr)
			if err != nil {
				return err
			}
			if hll >= hlr {
				if err := st.rotateRight(n, parent); err != nil {
					return err
				}
			} else {
				if err := st.rotateLeft(l, n); err != nil {
					return err
				}
				if err := st.rotateRight(n, parent); err != nil {
					return err
				}
			}
		} else {
			rr, err := st.right(r)
			if err != nil {
				return err
			}
			rl, err := st.left(r)
			if err != nil {
				return err
			}
			hrr, err := st.height(rr)
			if err != nil {
				return err
			}
			hrl, err := st.height(rl)
			if err != nil {
				return err
			}
			if hrr >= hrl {
				if err := st.rotateLeft(n, parent); err != nil {
					return err
				}
			} else {
				if err := st.rotateRight(r, n); err != nil {
					return err
				}
				if err := st.rotateLeft(n, parent); err != nil {
					return err
				}
			}
		}
	}
	return nil
}
