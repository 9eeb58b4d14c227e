package engine

// Urgency ranks a health-risk category. Critical sorts first.
type Urgency string

const (
	UrgencyCritical Urgency = "critical"
	UrgencyHigh     Urgency = "high"
	UrgencyMedium   Urgency = "medium"
)

// Rank returns the sort position of the urgency: critical < high < medium.
func (u Urgency) Rank() int {
	switch u {
	case UrgencyCritical:
		return 0
	case UrgencyHigh:
		return 1
	default:
		return 2
	}
}

// Built-in health-risk keys.
const (
	RiskChair         = "chair"
	RiskMonitor       = "monitor"
	RiskKeyboardMouse = "keyboard_mouse"
	RiskPosture       = "posture"
	RiskDualMonitors  = "dual_monitors"
	RiskLaptop        = "laptop"
	RiskMicrobreaks   = "microbreaks"
)

// HealthRisk describes the consequences of one unmet risk category and what
// to do about it. Read-only reference data.
type HealthRisk struct {
	Key         string
	Name        string
	Urgency     Urgency
	Effects     []string
	ActionItems []string
}

// RiskCatalog maps risk keys to their reference entries.
func RiskCatalog() map[string]HealthRisk {
	return map[string]HealthRisk{
		RiskChair: {
			Key: RiskChair, Name: "Chair and seating height problems", Urgency: UrgencyHigh,
			Effects: []string{
				"Back and spine pain (72% of workers)",
				"Varicose veins and leg swelling (20%)",
				"Restricted blood flow",
				"Chronic joint inflammation",
			},
			ActionItems: []string{
				"Replace or adjust the chair",
				"Add a footrest",
				"Exercise: back stretching",
			},
		},
		RiskMonitor: {
			Key: RiskMonitor, Name: "Monitor placement problems", Urgency: UrgencyHigh,
			Effects: []string{
				"Neck and nape pain (51% of workers)",
				"Vision disorders (60%)",
				"Headaches and migraines (47%)",
				"Eye strain",
			},
			ActionItems: []string{
				"Raise the monitor on a stand",
				"Adjust the lighting",
				"Exercise: palming and eye movement",
			},
		},
		RiskKeyboardMouse: {
			Key: RiskKeyboardMouse, Name: "Keyboard and mouse problems", Urgency: UrgencyHigh,
			Effects: []string{
				"Carpal tunnel syndrome (15% of workers)",
				"Shoulder and forearm pain",
				"Tendon inflammation",
				"Chronic wrist pain",
			},
			ActionItems: []string{
				"Move the mouse next to the keyboard",
				"Add a wrist rest",
				"Exercise: wrist stretching",
			},
		},
		RiskPosture: {
			Key: RiskPosture, Name: "Posture problems", Urgency: UrgencyHigh,
			Effects: []string{
				"Neck and nape pain (51%)",
				"Chronic muscle tension",
				"Chronic migraines",
				"Scoliosis and spine disorders",
			},
			ActionItems: []string{
				"Keep the head in a neutral position",
				"Relax the shoulders regularly",
				"Exercise: neck and shoulder rotation",
			},
		},
		RiskDualMonitors: {
			Key: RiskDualMonitors, Name: "Asymmetric monitor setup", Urgency: UrgencyMedium,
			Effects: []string{
				"Neck and back pain",
				"Asymmetric muscle load",
				"Scoliosis",
				"Chronic one-sided pain",
			},
			ActionItems: []string{
				"Level the monitor heights",
				"Arrange the monitors symmetrically",
				"Exercise: shoulder rotation",
			},
		},
		RiskLaptop: {
			Key: RiskLaptop, Name: "Missing proper laptop setup", Urgency: UrgencyCritical,
			Effects: []string{
				"Severe neck and back pain",
				"Carpal tunnel syndrome (immediate)",
				"Chronic vision problems",
				"Long-term health damage",
			},
			ActionItems: []string{
				"Get a laptop stand now",
				"Connect an external keyboard and mouse",
				"This is the top priority",
			},
		},
		RiskMicrobreaks: {
			Key: RiskMicrobreaks, Name: "No breaks or movement", Urgency: UrgencyCritical,
			Effects: []string{
				"Chronic stress (81% of workers)",
				"Elevated heart disease risk (30%)",
				"Fatigue and depression (45%)",
				"Sleep disorders (20%)",
			},
			ActionItems: []string{
				"Set a timer for every 30 minutes",
				"Take short walks",
				"Do loosening exercises",
			},
		},
	}
}

// riskUrgency resolves a risk key to its urgency; unknown keys are medium.
func riskUrgency(catalog map[string]HealthRisk, key string) Urgency {
	if r, ok := catalog[key]; ok {
		return r.Urgency
	}
	return UrgencyMedium
}
