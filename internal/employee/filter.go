package employee

import (
	"sort"
	"strings"
)

// filterEmployees meniru filter tampilan portal: pencarian nama/NIK plus
// filter klien.
func filterEmployees(employees []Employee, clientID, q string) []Employee {
	q = strings.TrimSpace(strings.ToLower(q))

	out := make([]Employee, 0, len(employees))
	for _, e := range employees {
		if clientID != "" && clientID != "all" && e.ClientID != clientID {
			continue
		}
		if q != "" &&
			!strings.Contains(strings.ToLower(e.FullName), q) &&
			!strings.Contains(strings.ToLower(e.ID), q) {
			continue
		}
		out = append(out, e)
	}
	return out
}

func sortByName(employees []Employee) {
	sort.Slice(employees, func(i, j int) bool {
		return strings.ToLower(employees[i].FullName) < strings.ToLower(employees[j].FullName)
	})
}
