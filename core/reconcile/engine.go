package reconcile

// Compute set-differences existing against reported. Duplicate keys on either
// side are collapsed to their first occurrence.
func Compute[K comparable](existing, reported []K) Diff[K] {
	held := make(map[K]struct{}, len(existing))
	for _, k := range existing {
		held[k] = struct{}{}
	}
	seen := make(map[K]struct{}, len(reported))
	for _, k := range reported {
		seen[k] = struct{}{}
	}

	var d Diff[K]
	visited := make(map[K]struct{}, len(existing))
	for _, k := range existing {
		if _, dup := visited[k]; dup {
			continue
		}
		visited[k] = struct{}{}
		if _, ok := seen[k]; ok {
			d.Keep = append(d.Keep, k)
		} else {
			d.Remove = append(d.Remove, k)
		}
	}

	added := make(map[K]struct{})
	for _, k := range reported {
		if _, ok := held[k]; ok {
			continue
		}
		if _, dup := added[k]; dup {
			continue
		}
		added[k] = struct{}{}
		d.Add = append(d.Add, k)
	}

	return d
}

// Empty reports whether the diff requires no writes.
func (d Diff[K]) Empty() bool {
	return len(d.Add) == 0 && len(d.Remove) == 0
}
