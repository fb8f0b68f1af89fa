package cache

// Keyer derives cache keys for the pipeline stages. Each stage is keyed by
// the content hash of its input, so a changed model file invalidates
// everything downstream without explicit bookkeeping.
type Keyer interface {
	// ModelKey keys a parsed model by the source file's content hash.
	ModelKey(contentHash string) string

	// TreeKey keys a built hierarchy by the model hash.
	TreeKey(modelHash string) string

	// ArtifactKey keys a rendered artifact by its input hash and the render
	// options.
	ArtifactKey(inputHash string, opts ArtifactKeyOpts) string
}

// ArtifactKeyOpts are the options that distinguish rendered artifacts built
// from the same tree.
type ArtifactKeyOpts struct {
	// Format is the artifact format: text, json, dot, svg, png, scene,
	// takeoff-json, takeoff-csv.
	Format string

	// Class and Columns narrow takeoff artifacts.
	Class   string
	Columns []string
}

// DefaultKeyer is the standard key scheme.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer {
	return &DefaultKeyer{}
}

// ModelKey generates a key for a parsed model.
func (k *DefaultKeyer) ModelKey(contentHash string) string {
	return hashKey("model", contentHash)
}

// TreeKey generates a key for a built hierarchy.
func (k *DefaultKeyer) TreeKey(modelHash string) string {
	return hashKey("tree", modelHash)
}

// ArtifactKey generates a key for a rendered artifact.
func (k *DefaultKeyer) ArtifactKey(inputHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", inputHash, opts)
}

// Ensure DefaultKeyer implements Keyer.
var _ Keyer = (*DefaultKeyer)(nil)
