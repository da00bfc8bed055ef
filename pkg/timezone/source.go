package timezone

import "sync"

// Source enumerates the known timezones.
type Source interface {
	Zones() []*Zone
}

// catalogEntry maps one IANA reference to its friendly display names.
type catalogEntry struct {
	reference string
	names     []string
}

// builtinCatalog is the curated friendly-name mapping over the host tzdata.
// Several friendly names may share one reference; each becomes a display
// alias of the zone.
var builtinCatalog = []catalogEntry{
	{"Etc/GMT+12", []string{"International Date Line West"}},
	{"Pacific/Pago_Pago", []string{"American Samoa"}},
	{"Pacific/Honolulu", []string{"Hawaii"}},
	{"America/Anchorage", []string{"Alaska"}},
	{"America/Los_Angeles", []string{"Pacific Time (US & Canada)"}},
	{"America/Phoenix", []string{"Arizona"}},
	{"America/Denver", []string{"Mountain Time (US & Canada)"}},
	{"America/Chicago", []string{"Central Time (US & Canada)"}},
	{"America/New_York", []string{"Eastern Time (US & Canada)"}},
	{"America/Indiana/Indianapolis", []string{"Indiana (East)"}},
	{"America/Halifax", []string{"Atlantic Time (Canada)"}},
	{"America/St_Johns", []string{"Newfoundland"}},
	{"America/Sao_Paulo", []string{"Brasilia"}},
	{"America/Argentina/Buenos_Aires", []string{"Buenos Aires"}},
	{"America/Santiago", []string{"Santiago"}},
	{"America/Mexico_City", []string{"Guadalajara", "Mexico City"}},
	{"America/Bogota", []string{"Bogota"}},
	{"America/Lima", []string{"Lima", "Quito"}},
	{"UTC", []string{"UTC"}},
	{"Europe/London", []string{"Edinburgh", "London"}},
	{"Europe/Lisbon", []string{"Lisbon"}},
	{"Africa/Casablanca", []string{"Casablanca"}},
	{"Europe/Paris", []string{"Paris"}},
	{"Europe/Madrid", []string{"Madrid"}},
	{"Europe/Berlin", []string{"Berlin"}},
	{"Europe/Rome", []string{"Rome"}},
	{"Europe/Amsterdam", []string{"Amsterdam"}},
	{"Europe/Stockholm", []string{"Stockholm"}},
	{"Europe/Warsaw", []string{"Warsaw"}},
	{"Europe/Athens", []string{"Athens"}},
	{"Europe/Bucharest", []string{"Bucharest"}},
	{"Europe/Helsinki", []string{"Helsinki"}},
	{"Europe/Kyiv", []string{"Kyiv"}},
	{"Europe/Moscow", []string{"Moscow", "St. Petersburg"}},
	{"Europe/Istanbul", []string{"Istanbul"}},
	{"Africa/Cairo", []string{"Cairo"}},
	{"Africa/Johannesburg", []string{"Pretoria"}},
	{"Africa/Nairobi", []string{"Nairobi"}},
	{"Asia/Jerusalem", []string{"Jerusalem"}},
	{"Asia/Dubai", []string{"Abu Dhabi", "Muscat"}},
	{"Asia/Tehran", []string{"Tehran"}},
	{"Asia/Karachi", []string{"Islamabad", "Karachi"}},
	{"Asia/Kolkata", []string{"Chennai", "Kolkata", "Mumbai", "New Delhi"}},
	{"Asia/Kathmandu", []string{"Kathmandu"}},
	{"Asia/Dhaka", []string{"Dhaka"}},
	{"Asia/Bangkok", []string{"Bangkok", "Hanoi"}},
	{"Asia/Shanghai", []string{"Beijing"}},
	{"Asia/Hong_Kong", []string{"Hong Kong"}},
	{"Asia/Singapore", []string{"Singapore"}},
	{"Asia/Tokyo", []string{"Osaka", "Sapporo", "Tokyo"}},
	{"Asia/Seoul", []string{"Seoul"}},
	{"Australia/Perth", []string{"Perth"}},
	{"Australia/Adelaide", []string{"Adelaide"}},
	{"Australia/Brisbane", []string{"Brisbane"}},
	{"Australia/Sydney", []string{"Canberra", "Melbourne", "Sydney"}},
	{"Pacific/Guam", []string{"Guam"}},
	{"Pacific/Auckland", []string{"Auckland", "Wellington"}},
	{"Pacific/Fiji", []string{"Fiji"}},
	{"Pacific/Tongatapu", []string{"Nuku'alofa"}},
}

// BuiltinSource serves the curated catalog, loading each zone lazily once.
// Zones missing from the host tzdata are skipped rather than failing the
// whole listing.
type BuiltinSource struct {
	once  sync.Once
	zones []*Zone
}

// NewBuiltinSource creates a source over the builtin catalog.
func NewBuiltinSource() *BuiltinSource {
	return &BuiltinSource{}
}

// Zones returns the catalog zones available on this host.
func (s *BuiltinSource) Zones() []*Zone {
	s.once.Do(func() {
		s.zones = make([]*Zone, 0, len(builtinCatalog))
		for _, entry := range builtinCatalog {
			z, err := NewZone(entry.reference, entry.names...)
			if err != nil {
				continue
			}
			s.zones = append(s.zones, z)
		}
	})
	return s.zones
}

// StaticSource serves a fixed zone list, mainly for tests.
type StaticSource []*Zone

// Zones returns the source's zones.
func (s StaticSource) Zones() []*Zone {
	return s
}
