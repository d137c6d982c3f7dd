package catalog

import "github.com/dayooguns/tompri/pkg/interfaces"

// CriterionDetail documents one of the four weighted prioritisation criteria:
// what it measures, what each 1-5 rating means, and the questions an assessor
// should ask before picking a rating.
type CriterionDetail struct {
	Criterion   interfaces.Criterion `json:"criterion"`
	Title       string               `json:"title"`
	Description string               `json:"description"`
	Scale       [5]string            `json:"scale"`
	Questions   []string             `json:"questions"`
}

// Criteria returns the reference documentation for the four criteria, in
// canonical order.
func Criteria() []CriterionDetail {
	return []CriterionDetail{
		{
			Criterion:   interfaces.CriterionBusinessImpact,
			Title:       "Business Impact Potential",
			Description: "Measures how significantly this improvement will affect business outcomes, including revenue, risk mitigation, efficiency gains, and strategic objectives.",
			Scale: [5]string{
				"1 - Minimal: Limited business value",
				"2 - Low: Minor operational benefits",
				"3 - Medium: Moderate improvement in business processes",
				"4 - High: Significant efficiency gains or cost reduction",
				"5 - Critical: Directly impacts revenue, risk, or strategic objectives",
			},
			Questions: []string{
				"Will fixing this meaningfully improve business outcomes?",
				"Does this address a major business pain point?",
				"Will this improve data trust and reputation?",
				"Can we measure ROI within 6-12 months?",
			},
		},
		{
			Criterion:   interfaces.CriterionFeasibility,
			Title:       "Implementation Feasibility",
			Description: "Assesses how realistic it is to deliver this improvement given available resources, organizational constraints, and technical dependencies.",
			Scale: [5]string{
				"1 - Very Hard: Major organizational change or technical overhaul required",
				"2 - Hard: Significant effort, multiple dependencies",
				"3 - Moderate: Requires some new processes/tools but achievable",
				"4 - Easy: Minor effort, clear solution path",
				"5 - Very Easy: Can implement immediately with existing resources",
			},
			Questions: []string{
				"Can we realistically deliver this with available resources?",
				"Do we control the key levers for change?",
				"What's the resource requirement (people, time, budget)?",
				"Are there technical or regulatory constraints?",
			},
		},
		{
			Criterion:   interfaces.CriterionPolitical,
			Title:       "Political Viability",
			Description: "Evaluates the likelihood of gaining necessary stakeholder support and navigating organizational politics to successfully implement this change.",
			Scale: [5]string{
				"1 - Strong Resistance: Major stakeholder opposition expected",
				"2 - Some Resistance: Significant political hurdles to overcome",
				"3 - Neutral: Mixed views, manageable politics",
				"4 - Good Support: Some resistance but overall positive",
				"5 - Strong Support: Data Office and business actively supportive",
			},
			Questions: []string{
				"Can we get the stakeholder support needed to succeed?",
				"Does this step on Data Office territorial concerns?",
				"Will the business champion this change?",
				"Are there hidden political landmines?",
			},
		},
		{
			Criterion:   interfaces.CriterionFoundation,
			Title:       "Foundation Building",
			Description: "Measures how much this improvement enables or unlocks other future improvements, building organizational capability and creating positive momentum.",
			Scale: [5]string{
				"1 - Standalone: Doesn't particularly enable other improvements",
				"2 - Limited Enablement: Minor knock-on effects",
				"3 - Some Enablement: Helps with a few other areas",
				"4 - Important Enabler: Supports several other initiatives",
				"5 - Critical Foundation: Enables multiple other improvements",
			},
			Questions: []string{
				"Does this unlock other improvements down the line?",
				"Is this a prerequisite for other high-value changes?",
				"Does this build organizational capability for future improvements?",
				"Will this create positive momentum for the broader operating model?",
			},
		},
	}
}
