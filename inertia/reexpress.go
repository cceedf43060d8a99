package inertia

// ReExpressInPlace re-expresses the receiver from its current frame E to a
// frame A, given the rotation R_AE relating the two frames: I_A = R * I_E *
// R^T. The similarity transform is computed over the six stored values
// rather than as a full matrix product. The re-expressed tensor is verified;
// on failure the receiver is untouched.
func (i *RotationalInertia[T]) ReExpressInPlace(rAE RotationMatrix[T]) error {
	r0, r1, r2 := rAE.Row(0), rAE.Row(1), rAE.Row(2)
	// w_k = I * r_k, so (R I R^T)(j, k) = r_j . w_k.
	w0 := i.MulVector(r0)
	w1 := i.MulVector(r1)
	w2 := i.MulVector(r2)
	res := newUnchecked(
		r0.Dot(w0), r1.Dot(w1), r2.Dot(w2),
		r0.Dot(w1), r0.Dot(w2), r1.Dot(w2),
	)
	if err := res.invalidityReport(); err != nil {
		return err
	}
	*i = res
	return nil
}

// ReExpress returns the receiver re-expressed from its current frame E to a
// frame A, given the rotation R_AE relating the two frames.
func (i RotationalInertia[T]) ReExpress(rAE RotationMatrix[T]) (RotationalInertia[T], error) {
	res := i
	if err := res.ReExpressInPlace(rAE); err != nil {
		return NewNaNRotationalInertia[T](), err
	}
	return res, nil
}
