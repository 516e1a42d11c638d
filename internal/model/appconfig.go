package model

// AppConfig holds application-wide preferences and default optimize
// settings, the ambient equivalent of the teacher's CNC machine defaults.
type AppConfig struct {
	DefaultKerf           float64   `json:"default_kerf"`
	DefaultAlgorithm      Algorithm `json:"default_algorithm"`
	DefaultMaxSplitParts  int       `json:"default_max_split_parts"`
	DefaultJointAllowance float64   `json:"default_joint_allowance"`
	DefaultPatternCap     int       `json:"default_pattern_cap"`

	AutoSaveInterval int      `json:"auto_save_interval"` // minutes, 0 = disabled
	RecentProjects   []string `json:"recent_projects"`
}

// DefaultAppConfig returns an AppConfig populated from DefaultParams.
func DefaultAppConfig() AppConfig {
	d := DefaultParams()
	return AppConfig{
		DefaultKerf:           d.Kerf,
		DefaultAlgorithm:      d.Algorithm,
		DefaultMaxSplitParts:  d.MaxSplitParts,
		DefaultJointAllowance: d.JointAllowance,
		DefaultPatternCap:     d.PatternCap,
		AutoSaveInterval:      0,
		RecentProjects:        []string{},
	}
}

// ApplyToParams copies this config's defaults into an OptimizeParams,
// the same role the teacher's ApplyToSettings plays for a new project.
func (c AppConfig) ApplyToParams(p *OptimizeParams) {
	p.Kerf = c.DefaultKerf
	p.Algorithm = c.DefaultAlgorithm
	p.MaxSplitParts = c.DefaultMaxSplitParts
	p.JointAllowance = c.DefaultJointAllowance
	p.PatternCap = c.DefaultPatternCap
}
