// Package station defines the static catalog of city monitoring stations.
package station

// Descriptor is an immutable catalog entry for one fixed monitoring station.
// The feeds reference a station by ID in their column headers
// (pm25_<id> and time_<id>).
type Descriptor struct {
	ID     string
	Label  string
	Region string
	Icon   string
}

// Catalog returns the fixed Ulaanbaatar monitoring network. The catalog is
// static configuration fixed at process start; callers must not mutate the
// returned descriptors.
func Catalog() []Descriptor {
	return []Descriptor{
		{ID: "mnb", Label: "MNB", Region: "Bayangol", Icon: "urban"},
		{ID: "zuragt", Label: "Zuragt", Region: "Bayangol", Icon: "urban"},
		{ID: "toirog32", Label: "32-r Toirog", Region: "Bayangol", Icon: "urban"},
		{ID: "tolgoit", Label: "Tolgoit", Region: "Songino Khairkhan", Icon: "ger-district"},
		{ID: "bayankhoshuu", Label: "Bayankhoshuu", Region: "Songino Khairkhan", Icon: "ger-district"},
		{ID: "urgakh", Label: "Urgakh Naran", Region: "Songino Khairkhan", Icon: "ger-district"},
		{ID: "tavantolgoi", Label: "Tavan Tolgoi", Region: "Songino Khairkhan", Icon: "suburban"},
		{ID: "center", Label: "City Center", Region: "Sukhbaatar", Icon: "urban"},
		{ID: "dambadarjaa", Label: "Dambadarjaa", Region: "Sukhbaatar", Icon: "ger-district"},
		{ID: "chingeltei", Label: "Chingeltei", Region: "Chingeltei", Icon: "ger-district"},
		{ID: "denjiin", Label: "Denjiin Myanga", Region: "Chingeltei", Icon: "ger-district"},
		{ID: "khailaast", Label: "Khailaast", Region: "Chingeltei", Icon: "ger-district"},
		{ID: "zaisan", Label: "Zaisan", Region: "Khan-Uul", Icon: "suburban"},
		{ID: "yarmag", Label: "Yarmag", Region: "Khan-Uul", Icon: "suburban"},
		{ID: "nisekh", Label: "Nisekh", Region: "Khan-Uul", Icon: "industrial"},
		{ID: "amgalan", Label: "Amgalan", Region: "Bayanzurkh", Icon: "industrial"},
		{ID: "sharkhad", Label: "Sharkhad", Region: "Bayanzurkh", Icon: "ger-district"},
		{ID: "uliastai", Label: "Uliastai", Region: "Bayanzurkh", Icon: "suburban"},
	}
}

// IDs returns the catalog station IDs in catalog order.
func IDs() []string {
	catalog := Catalog()
	ids := make([]string, 0, len(catalog))
	for _, d := range catalog {
		ids = append(ids, d.ID)
	}
	return ids
}
