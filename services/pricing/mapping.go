package pricing

import (
	"slices"
	"strings"

	"github.com/Tshikamisava/nanny-gold-sub003/models"
)

// MapServices normalizes a raw preference blob into a ServiceSelection.
// It is total: unrecognized or absent fields map to false, never to an error.
// Long-term requests carry tag arrays; short-term requests carry booleans.
// Both flows derive lightHousekeeping and errandRuns from the household-task
// tag list, so the two raw schemas converge on one shape here and nothing
// downstream ever re-inspects the raw representation.
func MapServices(raw models.RawServicePreferences, durationType string) models.ServiceSelection {
	if durationType == models.DurationLongTerm {
		return models.ServiceSelection{
			Cooking:           hasTag(raw.Services, models.TagCooking),
			SpecialNeeds:      hasTag(raw.Services, models.TagSpecialNeeds),
			DrivingSupport:    hasTag(raw.Services, models.TagDrivingSupport),
			PetCare:           hasTag(raw.Services, models.TagPetCare),
			ECDTraining:       hasTag(raw.Services, models.TagECDTraining),
			Montessori:        hasTag(raw.Services, models.TagMontessori),
			BackupNanny:       hasTag(raw.Services, models.TagBackupNanny),
			LightHousekeeping: hasTag(raw.HouseholdTasks, models.TagLightHousekeeping),
			ErrandRuns:        hasTag(raw.HouseholdTasks, models.TagErrandRuns),
		}
	}

	// Short-term: boolean schema, plus the same household-task derivation.
	// Training and backup options only exist for long-term placements.
	return models.ServiceSelection{
		Cooking:           raw.Cooking,
		SpecialNeeds:      raw.SpecialNeeds,
		DrivingSupport:    raw.DrivingSupport,
		PetCare:           raw.PetCare,
		LightHousekeeping: hasTag(raw.HouseholdTasks, models.TagLightHousekeeping),
		ErrandRuns:        hasTag(raw.HouseholdTasks, models.TagErrandRuns),
	}
}

func hasTag(tags []string, tag string) bool {
	return slices.ContainsFunc(tags, func(t string) bool {
		return strings.EqualFold(strings.TrimSpace(t), tag)
	})
}
