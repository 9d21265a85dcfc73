package contact

import "hexcontact/errs"

// Criteria configures contact-pair acceptance (spec §4.3.1).
type Criteria struct {
	MaxGapDistance         float64
	MaxPenetration         float64
	MaxNormalAngle         float64
	SearchRadiusMultiplier float64
}

// DefaultCriteria returns the spec-documented defaults.
func DefaultCriteria() Criteria {
	return Criteria{
		MaxGapDistance:         0.005,
		MaxPenetration:         0.001,
		MaxNormalAngle:         45.0,
		SearchRadiusMultiplier: 2.0,
	}
}

// Validate rejects negative tolerances or a non-positive search multiplier.
func (c Criteria) Validate() error {
	if c.MaxGapDistance < 0 {
		return errs.New(errs.ConfigError, "max_gap_distance must be non-negative, got %v", c.MaxGapDistance)
	}
	if c.MaxPenetration < 0 {
		return errs.New(errs.ConfigError, "max_penetration must be non-negative, got %v", c.MaxPenetration)
	}
	if c.MaxNormalAngle < 0 {
		return errs.New(errs.ConfigError, "max_normal_angle must be non-negative, got %v", c.MaxNormalAngle)
	}
	if c.SearchRadiusMultiplier <= 0 {
		return errs.New(errs.ConfigError, "search_radius_multiplier must be positive, got %v", c.SearchRadiusMultiplier)
	}
	return nil
}

// SearchRadius is the spatial-query radius: max_gap_distance * multiplier.
func (c Criteria) SearchRadius() float64 {
	return c.MaxGapDistance * c.SearchRadiusMultiplier
}

// InRange reports whether a signed distance is acceptable:
// -max_penetration <= d <= max_gap_distance.
func (c Criteria) InRange(d float64) bool {
	return d >= -c.MaxPenetration && d <= c.MaxGapDistance
}

// AngleOK reports whether a misalignment angle is acceptable.
func (c Criteria) AngleOK(angle float64) bool {
	return angle <= c.MaxNormalAngle
}
