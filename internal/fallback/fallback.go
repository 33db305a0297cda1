// Package fallback provides the deterministic synthetic polling-station
// dataset. It is the reliability backstop: when the real sources under-deliver
// the pipeline still produces a usable, parish-complete dataset with no
// network or AI dependency.
package fallback

import (
	"github.com/votewatch-ja/stations-cli/internal/model"
	"github.com/votewatch-ja/stations-cli/internal/parish"
)

// facility is one hard-coded polling location.
type facility struct {
	name      string
	community string
}

// Generate enumerates the synthetic dataset: every parish, in canonical
// order, with station codes assigned by position in the parish's facility
// list. Output is identical on every call.
func Generate() []model.PollingStationRecord {
	var records []model.PollingStationRecord

	for _, p := range parish.All {
		for i, f := range facilities[p.Name] {
			records = append(records, model.PollingStationRecord{
				StationCode: parish.FormatCode(p.Prefix, i+1),
				Name:        f.name,
				Address:     f.community + ", " + p.Name,
				Parish:      p.Name,
				ParishID:    p.ID,
			})
		}
	}

	return records
}

// facilities lists known polling locations per parish. Positions are
// load-bearing: a facility's index determines its station code, so entries
// are append-only.
var facilities = map[string][]facility{
	"Kingston": {
		{"Alpha Primary School", "South Camp Road"},
		{"Holy Trinity Cathedral Hall", "George Headley Drive"},
		{"Kingston Technical High School", "Hanover Street"},
		{"St. Aloysius Primary School", "Duke Street"},
		{"Central Branch Primary School", "Slipe Pen Road"},
		{"Allman Town Primary School", "Victoria Street"},
		{"Franklin Town Community Centre", "Victoria Avenue"},
		{"Rollington Town Primary School", "Jackson Road"},
		{"Elletson Primary School", "Elletson Road"},
		{"St. Michael's Primary School", "Tower Street"},
	},
	"St. Andrew": {
		{"Mona Heights Primary School", "Mona Heights"},
		{"Hope Valley Experimental School", "Hope Pastures"},
		{"Papine High School", "Papine"},
		{"August Town Primary School", "August Town"},
		{"Half Way Tree Primary School", "Half Way Tree"},
		{"St. Richard's Primary School", "Red Hills Road"},
		{"Pembroke Hall Primary School", "Pembroke Hall"},
		{"Meadowbrook High School", "Meadowbrook"},
		{"Constant Spring Primary School", "Constant Spring"},
		{"Stony Hill Primary School", "Stony Hill"},
	},
	"St. Thomas": {
		{"Morant Bay High School", "Morant Bay"},
		{"Lyssons Primary School", "Lyssons"},
		{"Seaforth High School", "Seaforth"},
		{"Yallahs Primary School", "Yallahs"},
		{"Bath Primary School", "Bath"},
		{"Port Morant Primary School", "Port Morant"},
		{"Cedar Valley Primary School", "Cedar Valley"},
		{"White Horses Primary School", "White Horses"},
		{"Trinityville Community Centre", "Trinityville"},
	},
	"Portland": {
		{"Port Antonio High School", "Port Antonio"},
		{"Titchfield High School", "Titchfield Hill"},
		{"Buff Bay Primary School", "Buff Bay"},
		{"Hope Bay Primary School", "Hope Bay"},
		{"Manchioneal Primary School", "Manchioneal"},
		{"Boundbrook Primary School", "Boundbrook"},
		{"Fairy Hill Primary School", "Fairy Hill"},
		{"St. Margaret's Bay Primary School", "St. Margaret's Bay"},
		{"Moore Town Community Centre", "Moore Town"},
	},
	"St. Mary": {
		{"Port Maria Primary School", "Port Maria"},
		{"Annotto Bay High School", "Annotto Bay"},
		{"Highgate Primary School", "Highgate"},
		{"Oracabessa High School", "Oracabessa"},
		{"Gayle Primary School", "Gayle"},
		{"Richmond Primary School", "Richmond"},
		{"Islington Primary School", "Islington"},
		{"Carron Hall Primary School", "Carron Hall"},
		{"Retreat Primary School", "Retreat"},
	},
	"St. Ann": {
		{"St. Hilda's High School", "Brown's Town"},
		{"Ocho Rios High School", "Ocho Rios"},
		{"Ferncourt High School", "Claremont"},
		{"Marcus Garvey Technical High School", "St. Ann's Bay"},
		{"Discovery Bay Primary School", "Discovery Bay"},
		{"Runaway Bay Primary School", "Runaway Bay"},
		{"Moneague Primary School", "Moneague"},
		{"Bamboo Primary School", "Bamboo"},
		{"Alexandria Primary School", "Alexandria"},
		{"Exchange Primary School", "Exchange"},
	},
	"Trelawny": {
		{"William Knibb Memorial High School", "Martha Brae"},
		{"Falmouth All-Age School", "Falmouth"},
		{"Albert Town High School", "Albert Town"},
		{"Clark's Town Primary School", "Clark's Town"},
		{"Duncans Primary School", "Duncans"},
		{"Wakefield Primary School", "Wakefield"},
		{"Ulster Spring Primary School", "Ulster Spring"},
		{"Salt Marsh Community Centre", "Salt Marsh"},
	},
	"St. James": {
		{"Cornwall College", "Orange Street"},
		{"Montego Bay High School", "Union Street"},
		{"Herbert Morrison Technical High School", "Catherine Hall"},
		{"Anchovy High School", "Anchovy"},
		{"Cambridge High School", "Cambridge"},
		{"Adelphi Primary School", "Adelphi"},
		{"Salter's Hill Primary School", "Salter's Hill"},
		{"Granville Primary School", "Granville"},
		{"Barrett Town All-Age School", "Barrett Town"},
	},
	"Hanover": {
		{"Rusea's High School", "Lucea"},
		{"Green Island High School", "Green Island"},
		{"Hopewell High School", "Hopewell"},
		{"Sandy Bay Primary School", "Sandy Bay"},
		{"Cauldwell Primary School", "Cauldwell"},
		{"Ramble Primary School", "Ramble"},
		{"Chester Castle Community Centre", "Chester Castle"},
	},
	"Westmoreland": {
		{"Manning's School", "Savanna-la-Mar"},
		{"Frome Technical High School", "Frome"},
		{"Petersfield High School", "Petersfield"},
		{"Grange Hill High School", "Grange Hill"},
		{"Bethel Town Primary School", "Bethel Town"},
		{"Darliston Primary School", "Darliston"},
		{"Little London Primary School", "Little London"},
		{"Negril Primary School", "Negril"},
		{"Whithorn Primary School", "Whithorn"},
	},
	"St. Elizabeth": {
		{"Hampton School", "Malvern"},
		{"Munro College", "Potsdam"},
		{"Black River High School", "Black River"},
		{"Lacovia High School", "Lacovia"},
		{"Santa Cruz Primary School", "Santa Cruz"},
		{"Junction Primary School", "Junction"},
		{"Balaclava Primary School", "Balaclava"},
		{"Southfield Primary School", "Southfield"},
		{"Siloah Primary School", "Siloah"},
	},
	"Manchester": {
		{"Manchester High School", "Mandeville"},
		{"deCarteret College", "Mandeville"},
		{"Belair High School", "Belair"},
		{"Christiana High School", "Christiana"},
		{"Porus High School", "Porus"},
		{"Mile Gully High School", "Mile Gully"},
		{"Spur Tree Primary School", "Spur Tree"},
		{"Newport Primary School", "Newport"},
		{"Williamsfield Community Centre", "Williamsfield"},
	},
	"Clarendon": {
		{"Clarendon College", "Chapelton"},
		{"Glenmuir High School", "May Pen"},
		{"Vere Technical High School", "Hayes"},
		{"Denbigh High School", "Denbigh"},
		{"Lennon High School", "Mocho"},
		{"Spalding High School", "Spalding"},
		{"Frankfield Primary School", "Frankfield"},
		{"Rock River Primary School", "Rock River"},
		{"Lionel Town Primary School", "Lionel Town"},
		{"Osbourne Store Primary School", "Osbourne Store"},
	},
	"St. Catherine": {
		{"St. Jago High School", "Monk Street, Spanish Town"},
		{"Jonathan Grant High School", "Sligoville Road, Spanish Town"},
		{"Jose Marti Technical High School", "Twickenham Park"},
		{"Charlemont High School", "Linstead"},
		{"Bog Walk High School", "Bog Walk"},
		{"Old Harbour High School", "Old Harbour"},
		{"Bridgeport High School", "Portmore"},
		{"Greater Portmore High School", "Portmore"},
		{"Ewarton Primary School", "Ewarton"},
		{"Above Rocks Primary School", "Above Rocks"},
	},
}
