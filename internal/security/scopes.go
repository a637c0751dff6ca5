package security

// Intersect возвращает элементы первого множества, присутствующие во всех остальных
func Intersect(first []string, others ...[]string) []string {
	var out []string
	for _, scope := range first {
		inAll := true
		for _, other := range others {
			if !contains(other, scope) {
				inAll = false
				break
			}
		}
		if inAll && !contains(out, scope) {
			out = append(out, scope)
		}
	}
	return out
}

// IsSubset : пустое множество подмножеством не считается
func IsSubset(requested, owned []string) bool {
	if len(requested) == 0 {
		return false
	}
	for _, scope := range requested {
		if !contains(owned, scope) {
			return false
		}
	}
	return true
}

func contains(list []string, value string) bool {
	for _, v := range list {
		if v == value {
			return true
		}
	}
	return false
}
