package timezone

import (
	"sort"
	"strings"
	"time"

	"github.com/chronokit/chronokit/pkg/cache"
)

// Resolver answers lookup and listing queries over a zone source.
//
// The sorted name listings are memoized per DST label for the resolver's
// lifetime; the source is assumed static. Construct a fresh resolver to
// observe a changed source.
type Resolver struct {
	source Source
	now    func() time.Time
	lists  *cache.Memo[string, zoneLists]
}

// zoneLists is one memo entry: the plain listing and its DST-augmented twin.
type zoneLists struct {
	standard []string
	withDST  []string
}

// ResolverOption configures a Resolver.
type ResolverOption func(*Resolver)

// WithClock overrides the time source used to pick the reference year for
// DST augmentation. Primarily for deterministic tests.
func WithClock(now func() time.Time) ResolverOption {
	return func(r *Resolver) {
		if now != nil {
			r.now = now
		}
	}
}

// NewResolver creates a resolver over the given source.
func NewResolver(source Source, opts ...ResolverOption) *Resolver {
	r := &Resolver{
		source: source,
		now:    time.Now,
		lists:  cache.NewMemo[string, zoneLists](),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Zones returns the source's zones.
func (r *Resolver) Zones() []*Zone {
	return r.source.Zones()
}

// Find returns the zone whose display names include name, either plainly or
// qualified with the DST label. A miss returns false, not an error.
func (r *Resolver) Find(name, dstLabel string) (*Zone, bool) {
	if dstLabel == "" {
		dstLabel = DefaultDSTLabel
	}
	for _, z := range r.Zones() {
		for _, display := range z.DisplayNames() {
			if display == name || display+" "+dstLabel == name {
				return z, true
			}
		}
	}
	return nil, false
}

// ListAll returns every zone display name, sorted by location name. With
// withDST set, names of DST-observing zones additionally appear qualified
// with the label. Both listings are built once per distinct label and shared
// by subsequent calls.
func (r *Resolver) ListAll(withDST bool, dstLabel string) []string {
	if dstLabel == "" {
		dstLabel = DefaultDSTLabel
	}
	lists := r.lists.GetOrCompute(dstLabel, func() zoneLists {
		return r.buildLists(dstLabel)
	})
	if withDST {
		return lists.withDST
	}
	return lists.standard
}

func (r *Resolver) buildLists(dstLabel string) zoneLists {
	year := r.now().Year()

	var standard, augmented []string
	for _, z := range r.Zones() {
		usesDST := z.UsesDST(year)
		for _, display := range z.DisplayNames() {
			standard = append(standard, display)
			augmented = append(augmented, display)
			if usesDST && !strings.HasSuffix(display, dstLabel) {
				augmented = append(augmented, display+" "+dstLabel)
			}
		}
	}

	return zoneLists{
		standard: sortedUnique(standard),
		withDST:  sortedUnique(augmented),
	}
}

func sortedUnique(names []string) []string {
	seen := make(map[string]bool, len(names))
	unique := names[:0]
	for _, name := range names {
		if !seen[name] {
			seen[name] = true
			unique = append(unique, name)
		}
	}
	sort.SliceStable(unique, func(i, j int) bool {
		return CompareZones(unique[i], unique[j]) < 0
	})
	return unique
}

// CompareZones orders two display strings by their location name, the part
// after the "(GMT±HH:MM)" prefix, ignoring the offset itself.
func CompareZones(a, b string) int {
	return strings.Compare(locationName(a), locationName(b))
}

func locationName(display string) string {
	if i := strings.Index(display, " "); i >= 0 {
		return display[i+1:]
	}
	return display
}

// Unparameterize resolves a parameterized zone string back to a zone.
// The query is normalized without its offset prefix and matched as a suffix
// of each known display name's parameterized form, so a query like
// "canada" still finds "Atlantic Time (Canada)". Returns the zone, the
// display name that matched, and whether anything matched.
func (r *Resolver) Unparameterize(query, dstLabel string) (*Zone, string, bool) {
	target := ParameterizeZone(query, false)
	if target == "" {
		return nil, "", false
	}
	for _, name := range r.ListAll(true, dstLabel) {
		if strings.HasSuffix(ParameterizeZone(name, false), target) {
			z, ok := r.Find(name, dstLabel)
			if !ok {
				return nil, "", false
			}
			return z, name, true
		}
	}
	return nil, "", false
}
