package queries

// Cache tags, one per API resource.
const (
	TagPeople              = "people"
	TagIntroducers         = "introducers"
	TagBrands              = "brands"
	TagSpecies             = "species"
	TagLines               = "lines"
	TagCorralGroups        = "corral-groups"
	TagCorrals             = "corrals"
	TagVehicleTypes        = "vehicle-types"
	TagVehicles            = "vehicles"
	TagCarriers            = "carriers"
	TagDisinfections       = "disinfections"
	TagConditionTransports = "condition-transports"
	TagProfile             = "profile"
)

// invalidationMap lists, for a write to the key resource, every tag whose
// cached reads can embed the written entity.
var invalidationMap = map[string][]string{
	TagPeople:              {TagPeople, TagIntroducers},
	TagIntroducers:         {TagIntroducers, TagBrands, TagConditionTransports},
	TagBrands:              {TagBrands, TagIntroducers},
	TagSpecies:             {TagSpecies, TagBrands, TagLines},
	TagLines:               {TagLines, TagCorralGroups},
	TagCorralGroups:        {TagCorralGroups, TagCorrals},
	TagCorrals:             {TagCorrals},
	TagVehicleTypes:        {TagVehicleTypes, TagVehicles},
	TagVehicles:            {TagVehicles, TagCarriers, TagDisinfections, TagConditionTransports},
	TagCarriers:            {TagCarriers, TagDisinfections},
	TagDisinfections:       {TagDisinfections},
	TagConditionTransports: {TagConditionTransports},
}

// InvalidatesFor returns the tags a write to tag invalidates. Unknown tags
// invalidate only themselves.
func InvalidatesFor(tag string) []string {
	if tags, ok := invalidationMap[tag]; ok {
		out := make([]string, len(tags))
		copy(out, tags)
		return out
	}
	return []string{tag}
}
