package models

// Stats tracks the four duel resources for one player. The rules layer clamps
// each value to [0,100] after card effects are applied.
type Stats struct {
	Investigation int `json:"investigation"`
	Morale        int `json:"morale"`
	PublicOpinion int `json:"publicOpinion"`
	Pressure      int `json:"pressure"`
}

// Apply adds the signed deltas in effects to the matching stats. No clamping
// happens here; callers decide whether to clamp afterwards.
func (s *Stats) Apply(effects map[StatKey]int) {
	for key, delta := range effects {
		switch key {
		case StatInvestigation:
			s.Investigation += delta
		case StatMorale:
			s.Morale += delta
		case StatPublicOpinion:
			s.PublicOpinion += delta
		case StatPressure:
			s.Pressure += delta
		}
	}
}

// Clamp bounds every stat to [0,100].
func (s *Stats) Clamp() {
	s.Investigation = clamp(s.Investigation)
	s.Morale = clamp(s.Morale)
	s.PublicOpinion = clamp(s.PublicOpinion)
	s.Pressure = clamp(s.Pressure)
}

func clamp(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
