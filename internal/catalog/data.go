// internal/catalog/data.go
package catalog

import "github.com/daviddc5/Game2-sub000/internal/models"

// characters maps a character id to its ordered card catalog. Repeated
// entries are intentional; a deck is built from the full list. This table is
// read-only lookup data and must never be handed out without copying.
var characters = map[string][]*models.Card{
	"investigator": {
		card("anonymous_tip", "Anonymous Tip", 1, models.TypeQuick, 8, false,
			eff(models.StatInvestigation, 8), nil),
		card("anonymous_tip", "Anonymous Tip", 1, models.TypeQuick, 8, false,
			eff(models.StatInvestigation, 8), nil),
		card("burner_phone", "Burner Phone", 1, models.TypeQuick, 6, false,
			eff(models.StatInvestigation, 6), eff(models.StatPressure, 4)),
		card("burner_phone", "Burner Phone", 1, models.TypeQuick, 6, false,
			eff(models.StatInvestigation, 6), eff(models.StatPressure, 4)),
		card("leaked_dossier", "Leaked Dossier", 3, models.TypeNormal, 4, false,
			eff(models.StatInvestigation, 15), nil),
		card("leaked_dossier", "Leaked Dossier", 3, models.TypeNormal, 4, false,
			eff(models.StatInvestigation, 15), nil),
		card("press_conference", "Press Conference", 3, models.TypeNormal, 5, false,
			eff(models.StatPublicOpinion, 12), eff(models.StatPressure, 8)),
		card("press_conference", "Press Conference", 3, models.TypeNormal, 5, false,
			eff(models.StatPublicOpinion, 12), eff(models.StatPressure, 8)),
		card("rally_newsroom", "Rally the Newsroom", 2, models.TypeQuick, 7, false,
			eff(models.StatMorale, 10), nil),
		card("rally_newsroom", "Rally the Newsroom", 2, models.TypeQuick, 7, false,
			eff(models.StatMorale, 10), nil),
		card("late_night_stakeout", "Late Night Stakeout", 2, models.TypeNormal, 3, false,
			effs(models.StatInvestigation, 10, models.StatMorale, -4), nil),
		card("hostile_interview", "Hostile Interview", 4, models.TypeNormal, 4, false,
			nil, effs(models.StatMorale, -10, models.StatPressure, 6)),
		card("editorial_pressure", "Editorial Pressure", 3, models.TypeNormal, 5, false,
			nil, eff(models.StatPressure, 12)),
		card("deflect_smear", "Deflect the Smear", 2, models.TypeCounter, 9, true,
			eff(models.StatMorale, 6), nil),
		card("subpoena_records", "Subpoena the Records", 5, models.TypePower, 1, false,
			eff(models.StatInvestigation, 18), eff(models.StatMorale, -6)),
		card("front_page_expose", "Front Page Expose", 6, models.TypePower, 2, false,
			effs(models.StatInvestigation, 20, models.StatPublicOpinion, 10),
			eff(models.StatPressure, 10)),
		card("document_dump", "Document Dump", 7, models.TypePower, 2, false,
			effs(models.StatInvestigation, 25, models.StatMorale, -8), nil),
	},
	"fixer": {
		card("paper_shredder", "Paper Shredder", 1, models.TypeQuick, 8, false,
			nil, eff(models.StatInvestigation, -8)),
		card("paper_shredder", "Paper Shredder", 1, models.TypeQuick, 8, false,
			nil, eff(models.StatInvestigation, -8)),
		card("damage_control", "Damage Control", 1, models.TypeQuick, 6, false,
			eff(models.StatPressure, -10), nil),
		card("damage_control", "Damage Control", 1, models.TypeQuick, 6, false,
			eff(models.StatPressure, -10), nil),
		card("intimidation", "Intimidation", 2, models.TypeQuick, 7, false,
			nil, effs(models.StatMorale, -8, models.StatPressure, 4)),
		card("intimidation", "Intimidation", 2, models.TypeQuick, 7, false,
			nil, effs(models.StatMorale, -8, models.StatPressure, 4)),
		card("spin_cycle", "Spin Cycle", 2, models.TypeNormal, 5, false,
			effs(models.StatPublicOpinion, 10, models.StatMorale, 5), nil),
		card("spin_cycle", "Spin Cycle", 2, models.TypeNormal, 5, false,
			effs(models.StatPublicOpinion, 10, models.StatMorale, 5), nil),
		card("friendly_anchor", "Friendly Anchor", 2, models.TypeNormal, 5, false,
			effs(models.StatPublicOpinion, 8, models.StatMorale, 4), nil),
		card("backroom_deal", "Backroom Deal", 3, models.TypeNormal, 4, false,
			eff(models.StatMorale, 8), eff(models.StatPressure, 6)),
		card("backroom_deal", "Backroom Deal", 3, models.TypeNormal, 4, false,
			eff(models.StatMorale, 8), eff(models.StatPressure, 6)),
		card("plant_a_mole", "Plant a Mole", 3, models.TypeNormal, 4, false,
			eff(models.StatInvestigation, 12), nil),
		card("stonewall", "Stonewall", 2, models.TypeCounter, 10, true,
			effs(models.StatPressure, -6, models.StatMorale, 4), nil),
		card("bury_the_story", "Bury the Story", 3, models.TypeCounter, 9, true,
			nil, eff(models.StatInvestigation, -10)),
		card("media_blitz", "Media Blitz", 5, models.TypePower, 2, false,
			eff(models.StatPublicOpinion, 15), eff(models.StatMorale, -8)),
		card("character_assassination", "Character Assassination", 6, models.TypePower, 3, false,
			nil, eff(models.StatMorale, -18)),
		card("blackmail_file", "Blackmail File", 6, models.TypePower, 1, false,
			nil, effs(models.StatPressure, 16, models.StatMorale, -6)),
	},
	"prosecutor": {
		card("wiretap_warrant", "Wiretap Warrant", 2, models.TypeQuick, 7, false,
			eff(models.StatInvestigation, 10), nil),
		card("wiretap_warrant", "Wiretap Warrant", 2, models.TypeQuick, 7, false,
			eff(models.StatInvestigation, 10), nil),
		card("plea_bargain", "Plea Bargain", 1, models.TypeQuick, 6, false,
			eff(models.StatMorale, 8), nil),
		card("plea_bargain", "Plea Bargain", 1, models.TypeQuick, 6, false,
			eff(models.StatMorale, 8), nil),
		card("sidebar", "Sidebar", 1, models.TypeQuick, 8, false,
			eff(models.StatPressure, -8), nil),
		card("contempt_citation", "Contempt Citation", 2, models.TypeNormal, 5, false,
			nil, eff(models.StatPressure, 8)),
		card("contempt_citation", "Contempt Citation", 2, models.TypeNormal, 5, false,
			nil, eff(models.StatPressure, 8)),
		card("cross_examination", "Cross-Examination", 3, models.TypeNormal, 5, false,
			eff(models.StatInvestigation, 8), eff(models.StatMorale, -8)),
		card("cross_examination", "Cross-Examination", 3, models.TypeNormal, 5, false,
			eff(models.StatInvestigation, 8), eff(models.StatMorale, -8)),
		card("immunity_deal", "Immunity Deal", 4, models.TypeNormal, 4, false,
			eff(models.StatInvestigation, 14), nil),
		card("immunity_deal", "Immunity Deal", 4, models.TypeNormal, 4, false,
			eff(models.StatInvestigation, 14), nil),
		card("asset_freeze", "Asset Freeze", 3, models.TypeNormal, 3, false,
			nil, effs(models.StatPressure, 10, models.StatMorale, -4)),
		card("indictment", "Indictment", 4, models.TypeNormal, 4, false,
			nil, effs(models.StatPressure, 12, models.StatMorale, -6)),
		card("objection", "Objection", 2, models.TypeCounter, 10, true,
			eff(models.StatMorale, 4), nil),
		card("grand_jury", "Grand Jury", 6, models.TypePower, 1, false,
			eff(models.StatInvestigation, 20), eff(models.StatPressure, 8)),
		card("closing_argument", "Closing Argument", 5, models.TypePower, 1, false,
			eff(models.StatPublicOpinion, 12), eff(models.StatMorale, -10)),
		card("star_witness", "Star Witness", 7, models.TypePower, 2, false,
			effs(models.StatInvestigation, 22, models.StatPublicOpinion, 8), nil),
	},
}

func card(id, name string, cost int, typ models.CardType, speed int, cancels bool, self, opp map[models.StatKey]int) *models.Card {
	return &models.Card{
		ID:              id,
		Name:            name,
		EnergyCost:      cost,
		Type:            typ,
		Speed:           speed,
		Cancels:         cancels,
		SelfEffects:     self,
		OpponentEffects: opp,
	}
}

func eff(k models.StatKey, v int) map[models.StatKey]int {
	return map[models.StatKey]int{k: v}
}

func effs(k1 models.StatKey, v1 int, k2 models.StatKey, v2 int) map[models.StatKey]int {
	return map[models.StatKey]int{k1: v1, k2: v2}
}
