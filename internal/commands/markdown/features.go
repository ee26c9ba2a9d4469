package markdowncmd

// FeatureGates exposes runtime toggles consulted on every execution. A nil
// func means enabled.
type FeatureGates struct {
	CommandsEnabled func() bool
}

func (g FeatureGates) commandsEnabled() bool {
	if g.CommandsEnabled == nil {
		return true
	}
	return g.CommandsEnabled()
}
