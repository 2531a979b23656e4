package fraction

// Compare returns -1, 0 or +1 depending on whether f is less than, equal to or greater
// than other.
//
// Denominators are always positive, so p/q R r/s holds exactly when p*s R r*q.
// The cross products are compared in 128 bits and cannot overflow.
func (f Fraction) Compare(other Operand) (int, error) {
	o, err := coerce(opCompare, other)
	if err != nil {
		return 0, err
	}

	f = f.orZero()

	return compareProducts(f.numerator, o.denominator, o.numerator, f.denominator), nil
}

func (f Fraction) Equal(other Operand) (bool, error) {
	c, err := f.Compare(other)
	return err == nil && c == 0, err
}

func (f Fraction) NotEqual(other Operand) (bool, error) {
	c, err := f.Compare(other)
	return err == nil && c != 0, err
}

func (f Fraction) Less(other Operand) (bool, error) {
	c, err := f.Compare(other)
	return err == nil && c < 0, err
}

func (f Fraction) LessOrEqual(other Operand) (bool, error) {
	c, err := f.Compare(other)
	return err == nil && c <= 0, err
}

func (f Fraction) Greater(other Operand) (bool, error) {
	c, err := f.Compare(other)
	return err == nil && c > 0, err
}

func (f Fraction) GreaterOrEqual(other Operand) (bool, error) {
	c, err := f.Compare(other)
	return err == nil && c >= 0, err
}
