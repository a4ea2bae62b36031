package problemgen

// StructuralValidator checks the per-operator domain constraints: operands
// positive, no negative differences, exact division, bounded products.
type StructuralValidator struct {
	// ProductMax caps A*B for multiplication. Zero disables the check.
	ProductMax int
}

func (v *StructuralValidator) Name() string { return "structural" }

func (v *StructuralValidator) Validate(q Question) *ValidationError {
	if q.A <= 0 || q.B <= 0 {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "operands must be positive",
		}
	}
	switch q.Op {
	case OpAdd:
	case OpSub:
		if q.A < q.B {
			return &ValidationError{
				Validator: v.Name(),
				Message:   "subtraction would be negative",
			}
		}
	case OpMul:
		if v.ProductMax > 0 && q.A*q.B > v.ProductMax {
			return &ValidationError{
				Validator: v.Name(),
				Message:   "product exceeds cap",
			}
		}
	case OpDiv:
		if q.A%q.B != 0 {
			return &ValidationError{
				Validator: v.Name(),
				Message:   "division is not exact",
			}
		}
	default:
		return &ValidationError{
			Validator: v.Name(),
			Message:   "unknown operator",
		}
	}
	if q.Answer <= 0 {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "answer must be positive",
		}
	}
	return nil
}
