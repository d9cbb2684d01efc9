package coord

// Pair is a serializable key/value pair. Unlike a map entry it keeps
// its position when stored in a slice, so scripts and config files can
// carry ordered, possibly duplicated, named values.
type Pair[K, V any] struct {
	Key   K `yaml:"key"`
	Value V `yaml:"value"`
}

func NewPair[K, V any](key K, value V) Pair[K, V] {
	return Pair[K, V]{Key: key, Value: value}
}

// Map collects pairs into a map; later keys overwrite earlier ones.
func Map[K comparable, V any](pairs []Pair[K, V]) map[K]V {
	m := make(map[K]V, len(pairs))
	for _, p := range pairs {
		m[p.Key] = p.Value
	}
	return m
}
