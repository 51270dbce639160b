package roster

import (
	"fmt"
	"math/rand/v2"

	"github.com/lixenwraith/lucky-globe/globe"
)

var (
	sampleDepartments = []string{"Engineering", "Finance", "People", "Sales", "Operations", "Leadership", "Marketing"}
	sampleFirstNames  = []string{"Anh", "Binh", "Chau", "Dung", "Giang", "Hung", "Huong", "Khanh", "Lan", "Minh", "Nam", "Oanh", "Phuc", "Quan", "Son", "Tu", "Uyen", "Vinh", "Yen"}
	sampleLastNames   = []string{"Nguyen", "Tran", "Le", "Pham", "Hoang", "Huynh", "Phan", "Vu", "Vo", "Dang", "Bui", "Do", "Ho", "Ngo", "Duong", "Ly"}
)

// DefaultSampleSize is the demo roster size used when no file is given
const DefaultSampleSize = 150

// Sample generates a deterministic demo roster with ids user-0..user-(n-1)
func Sample(n int, seed uint64) []globe.Entity {
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	list := make([]globe.Entity, max(n, 0))
	for i := range list {
		list[i] = globe.Entity{
			ID: fmt.Sprintf("user-%d", i),
			DisplayName: sampleLastNames[rng.IntN(len(sampleLastNames))] + " " +
				sampleFirstNames[rng.IntN(len(sampleFirstNames))],
			GroupLabel: sampleDepartments[rng.IntN(len(sampleDepartments))],
		}
	}
	return list
}
