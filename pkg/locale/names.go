package locale

// Names holds the localized calendar name sequences for one language.
// Day sequences start on Monday, month sequences on January.
//
// Consumers trust the lengths (7/7/12/12); they are validated only when a
// table is loaded through ParseYAML.
type Names struct {
	ShortDays   []string `yaml:"short_days"`
	LongDays    []string `yaml:"long_days"`
	ShortMonths []string `yaml:"short_months"`
	LongMonths  []string `yaml:"long_months"`
}

// English is the built-in default name table.
func English() Names {
	return Names{
		ShortDays: []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"},
		LongDays: []string{
			"Monday", "Tuesday", "Wednesday", "Thursday",
			"Friday", "Saturday", "Sunday",
		},
		ShortMonths: []string{
			"Jan", "Feb", "Mar", "Apr", "May", "Jun",
			"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
		},
		LongMonths: []string{
			"January", "February", "March", "April", "May", "June",
			"July", "August", "September", "October", "November", "December",
		},
	}
}
