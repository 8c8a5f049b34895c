// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package engine

// Method ids referenced by the rules
const (
	chcPill          = "chc_pill"
	chcRing          = "chc_ring"
	chcPatch         = "chc_patch"
	popNorethindrone = "pop_norethindrone"
	popDrospirenone  = "pop_drospirenone"
	dmpa             = "dmpa"
	implant          = "implant"
	lngIUS           = "lng_ius"
	cuIUD            = "cu_iud"
	barrier          = "barrier"
)

var (
	// estrogen-containing (combined hormonal) methods
	combinedHormonal = []string{chcPill, chcRing, chcPatch}

	allHormonal = []string{
		chcPill, chcRing, chcPatch,
		popNorethindrone, popDrospirenone,
		dmpa, implant, lngIUS,
	}
)

// Rule is one step of the evaluation. Rules run in table order and may
// only raise a method's status.
type Rule struct {
	ID      string
	Summary string
	Apply   func(a Answers, rs *ResultSet)
}

var rules = []Rule{
	{
		ID:      "POSSIBLE-PREGNANCY",
		Summary: "Possible pregnancy puts every method on caution.",
		Apply:   applyPregnancy,
	},
	{
		ID:      "POSTPARTUM-TIMING",
		Summary: "Early postpartum limits estrogen-containing methods.",
		Apply:   applyPostpartum,
	},
	{
		ID:      "ESTROGEN-CONTRAINDICATION",
		Summary: "Absolute contraindications to estrogen rule out combined hormonal methods.",
		Apply:   applyEstrogenContraindication,
	},
	{
		ID:      "SMOKING-AGE",
		Summary: "Smokers aged 35+ should avoid or be cautious with estrogen.",
		Apply:   applySmokingAge,
	},
	{
		ID:      "BREAST-CANCER",
		Summary: "Breast cancer rules out all hormonal methods.",
		Apply:   applyBreastCancer,
	},
	{
		ID:      "SEVERE-LIVER",
		Summary: "Severe liver disease rules out all hormonal methods.",
		Apply:   applySevereLiver,
	},
	{
		ID:      "ENZYME-INDUCERS",
		Summary: "Enzyme-inducing medication reduces efficacy of most hormonal methods.",
		Apply:   applyEnzymeInducers,
	},
	{
		ID:      "PATCH-WEIGHT",
		Summary: "The patch may be less effective at 90 kg or more.",
		Apply:   applyPatchWeight,
	},
	{
		ID:      "PREFERENCE",
		Summary: "Highlights methods that match the stated preference.",
		Apply:   applyPreference,
	},
}

// Rules returns the rule table in application order
func Rules() []Rule {
	return append([]Rule(nil), rules...)
}

func applyPregnancy(a Answers, rs *ResultSet) {
	if !a.Pregnant {
		return
	}
	rs.MarkCautionAll(rs.IDs(), "Possible pregnancy: confirm with pregnancy test/clinician before starting or changing contraception.")
}

func applyPostpartum(a Answers, rs *ResultSet) {
	switch a.Postpartum {
	case BreastfeedingUnder6Weeks:
		rs.MarkAvoidAll(combinedHormonal, "Breastfeeding <6 weeks postpartum: avoid estrogen-containing methods (higher clot risk/milk supply concerns).")
		rs.MarkCaution(popDrospirenone, "Early postpartum: drospirenone-only pill best avoided immediately postpartum until more safety data (educational caution).")
		rs.AnnotateAll([]string{lngIUS, cuIUD, implant, dmpa, popNorethindrone, barrier}, "Postpartum: generally suitable options to discuss with clinician.")
	case Breastfeeding6WeeksPlus:
		rs.MarkCautionAll(combinedHormonal, "Breastfeeding ≥6 weeks: estrogen may affect milk supply in some; discuss with clinician.")
	case NotBreastfeedingUnder3Wks:
		rs.MarkAvoidAll(combinedHormonal, "Not breastfeeding and <3 weeks postpartum: avoid estrogen-containing methods (higher clot risk).")
	case NotBreastfeeding3WksPlus:
		// estrogen may be considered if nothing else rules it out
	}
}

func applyEstrogenContraindication(a Answers, rs *ResultSet) {
	if !a.HasEstrogenContraindication() {
		return
	}
	rs.MarkAvoidAll(combinedHormonal, "Estrogen contraindication risk factor present (guideline-based).")
}

func applySmokingAge(a Answers, rs *ResultSet) {
	if a.Age < 35 {
		return
	}
	switch a.Smoking {
	case HeavySmoker:
		rs.MarkAvoidAll(combinedHormonal, "Smoker ≥35 years and ≥15 cigarettes/day: avoid estrogen-containing methods.")
	case LightSmoker:
		rs.MarkCautionAll(combinedHormonal, "Smoker ≥35 years: estrogen-containing methods may increase cardiovascular risk; discuss alternatives.")
	}
}

func applyBreastCancer(a Answers, rs *ResultSet) {
	if !a.BreastCancer {
		return
	}
	rs.MarkAvoidAll(allHormonal, "Current/past breast cancer: hormonal contraception is contraindicated.")
	rs.Annotate(cuIUD, "Non-hormonal highly effective option to discuss.")
	rs.Annotate(barrier, "Non-hormonal option; condoms also protect against STIs.")
}

func applySevereLiver(a Answers, rs *ResultSet) {
	if !a.SevereLiver {
		return
	}
	rs.MarkAvoidAll(allHormonal, "Severe liver disease: avoid hormonal methods; discuss non-hormonal options.")
	rs.Annotate(cuIUD, "Non-hormonal option may be preferred to discuss.")
}

func applyEnzymeInducers(a Answers, rs *ResultSet) {
	if !a.EnzymeInducers {
		return
	}
	rs.MarkCautionAll(
		[]string{chcPill, chcRing, chcPatch, popNorethindrone, popDrospirenone, implant},
		"Enzyme-inducing meds may reduce hormonal contraceptive effectiveness; consider methods not affected (e.g., IUDs, DMPA, barrier).",
	)
	rs.Annotate(dmpa, "Often preferred when enzyme inducers are used.")
	rs.Annotate(cuIUD, "Not affected by enzyme inducers.")
	rs.Annotate(lngIUS, "Local action; interactions unlikely clinically significant.")
	rs.Annotate(barrier, "Non-hormonal; unaffected by enzyme inducers.")
}

func applyPatchWeight(a Answers, rs *ResultSet) {
	if !a.Weight90 {
		return
	}
	rs.MarkCaution(chcPatch, "Patch may be less effective at ≥90 kg.")
}

func applyPreference(a Answers, rs *ResultSet) {
	switch a.Preference {
	case LowMaintenance:
		rs.Annotate(lngIUS, "Low maintenance preference: long-acting option.")
		rs.Annotate(cuIUD, "Low maintenance preference: long-acting non-hormonal option.")
		rs.Annotate(implant, "Low maintenance preference: long-acting option.")
		rs.Annotate(dmpa, "Low maintenance preference: every-3-month injection.")
	case NonHormonal:
		rs.Annotate(cuIUD, "Preference for non-hormonal option.")
		rs.Annotate(barrier, "Preference for non-hormonal option (condoms also protect against STIs).")
		// a preference, not a clinical risk, but it still lowers hormonal methods to caution
		rs.MarkCautionAll(allHormonal, "Preference indicates non-hormonal methods may be better aligned (not a safety issue).")
	case CycleControl:
		rs.Annotate(lngIUS, "Often reduces bleeding and dysmenorrhea.")
		rs.Annotate(dmpa, "May lead to amenorrhea in many users.")
		rs.Annotate(implant, "May reduce bleeding days; irregular bleeding possible.")
		rs.AnnotateAll(combinedHormonal, "Combined hormonal methods may help regulate cycles if eligible.")
	case FastFertility:
		rs.MarkCaution(dmpa, "Return to fertility may be delayed after stopping DMPA (sometimes up to ~1 year).")
		rs.Annotate(cuIUD, "Rapid return to fertility after removal.")
		rs.Annotate(lngIUS, "Rapid return to fertility after removal.")
		rs.Annotate(implant, "Rapid return to fertility after removal.")
	}
}
