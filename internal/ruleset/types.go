package ruleset

// UserAgent describes the client that issued a request. Family is always
// populated on a match; the version components are populated only when the
// matching rule's templates (or the pattern's captures) supplied them.
type UserAgent struct {
	Family     string
	Major      string
	Minor      string
	Patch      string
	PatchMinor string
}

// OS describes the operating system a request originated from.
type OS struct {
	Family     string
	Major      string
	Minor      string
	Patch      string
	PatchMinor string
}

// Device describes the hardware a request originated from.
type Device struct {
	Family string
	Brand  string
	Model  string
}

// Result is the outcome of resolving one User-Agent string. Requested
// identifies which facets the caller asked for; a nil facet pointer means
// either "not requested" or "requested but no rule matched" — Requested is
// what disambiguates the two.
type Result struct {
	Requested Facet
	UserAgent *UserAgent
	OS        *OS
	Device    *Device
	UA        string // the original, unparsed User-Agent string
}

// defaultUserAgent, defaultOS and defaultDevice are the sentinel values
// WithDefaults substitutes for a requested-but-unmatched facet.
var (
	defaultUserAgent = UserAgent{Family: "Other"}
	defaultOS        = OS{Family: "Other"}
	defaultDevice    = Device{Family: "Other"}
)

// Narrow returns a copy of r carrying only the facets in f. f must be a
// subset of r.Requested's reach is not enforced here — callers needing that
// guarantee should check Requested themselves; Narrow simply clears fields
// for facets not in f regardless of whether they were ever populated.
func (r Result) Narrow(f Facet) Result {
	out := Result{Requested: r.Requested & f, UA: r.UA}
	if f.Has(FacetUserAgent) {
		out.UserAgent = r.UserAgent
	}
	if f.Has(FacetOS) {
		out.OS = r.OS
	}
	if f.Has(FacetDevice) {
		out.Device = r.Device
	}
	return out
}

// WithDefaults produces a complete result: every none-valued facet is
// replaced by its per-facet default sentinel ("Other", no brand/model/
// version). A complete result names all three facets, so WithDefaults is
// only meaningful — and only legal — when every facet was requested; calling
// it on a result that requested fewer is a contract violation (§6/§7) and
// panics, since the omitted facet can never be defaulted.
func (r Result) WithDefaults() Result {
	if r.Requested != AllFacets() {
		panic("ruleset: WithDefaults requires all facets to have been requested, got " + r.Requested.String())
	}
	out := r
	if out.UserAgent == nil {
		ua := defaultUserAgent
		out.UserAgent = &ua
	}
	if out.OS == nil {
		os := defaultOS
		out.OS = &os
	}
	if out.Device == nil {
		d := defaultDevice
		out.Device = &d
	}
	return out
}
