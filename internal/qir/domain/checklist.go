package domain

import "github.com/shushruth21/estre/internal/configuration"

func item(id, label string, required bool) CheckItem {
	return CheckItem{ID: id, Label: label, Required: required, Status: StatusPending}
}

// standardChecklist applies to every category.
func standardChecklist() []CheckCategory {
	return []CheckCategory{
		{
			CategoryID: "frame",
			Label:      "Frame",
			Items: []CheckItem{
				item("frame_joints", "Joints glued and screwed", true),
				item("frame_material", "Frame material matches specification", true),
				item("frame_stability", "No wobble under load", true),
			},
		},
		{
			CategoryID: "upholstery",
			Label:      "Upholstery",
			Items: []CheckItem{
				item("upholstery_fabric", "Fabric code matches job card", true),
				item("upholstery_seams", "Seams straight, no puckering", true),
				item("upholstery_pattern", "Pattern aligned across panels", false),
			},
		},
		{
			CategoryID: "dimensions",
			Label:      "Dimensions",
			Items: []CheckItem{
				item("dim_overall", "Overall dimensions within tolerance", true),
				item("dim_seat", "Seat depth and width per configuration", true),
			},
		},
		{
			CategoryID: "finishing",
			Label:      "Finishing",
			Items: []CheckItem{
				item("finish_legs", "Legs finished and level", true),
				item("finish_cleanup", "No glue marks or loose threads", false),
			},
		},
		{
			CategoryID: "functionality",
			Label:      "Functionality",
			Items: []CheckItem{
				item("func_cushions", "Cushions seated correctly", true),
			},
		},
	}
}

// ChecklistForCategory returns the standard checks unioned with the
// category-specific ones. The items start pending.
func ChecklistForCategory(category configuration.Category) []CheckCategory {
	checklist := standardChecklist()

	switch category {
	case configuration.CategorySofa, configuration.CategorySofaBed:
		checklist = append(checklist, CheckCategory{
			CategoryID: "sectional",
			Label:      "Sectional",
			Items: []CheckItem{
				item("sectional_alignment", "Sections align and connect flush", true),
				item("sectional_console", "Console fitted and level", false),
				item("sectional_lounger", "Lounger storage operates smoothly", false),
			},
		})
	case configuration.CategoryRecliner, configuration.CategoryCinemaChair:
		checklist = append(checklist, CheckCategory{
			CategoryID: "mechanism",
			Label:      "Mechanism",
			Items: []CheckItem{
				item("mech_recline", "Recline cycle smooth through full range", true),
				item("mech_electrical", "Electrical controls and wiring tested", true),
			},
		})
	case configuration.CategoryBed, configuration.CategoryKidsBed:
		checklist = append(checklist, CheckCategory{
			CategoryID: "bed",
			Label:      "Bed",
			Items: []CheckItem{
				item("bed_storage", "Storage hydraulics lift and hold", true),
				item("bed_headboard", "Headboard mounted square and tight", true),
			},
		})
	}

	return checklist
}
