// Package mock serves static fixture data behind the same Service surface as
// the live client, so the rest of an application can run without a backend.
package mock

import (
	"time"

	"github.com/gebeyahub/gebeya-go/core"
)

func datePtr(year int, month time.Month, day int) *time.Time {
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return &t
}

// The fixture dataset is package-private and never handed out directly;
// accessors return copies so callers cannot mutate it between calls.
var fixtureGroups = []core.Group{
	{
		ID:             1,
		Name:           "Teff Flour 50kg Bags",
		Description:    "Bulk order of premium white teff flour direct from the mill.",
		Category:       "Grains",
		Location:       "Addis Ababa",
		Price:          24.99,
		Unit:           "bag",
		TargetQuantity: 200,
		CurrentMembers: 34,
		MaxMembers:     60,
		Status:         "active",
		Deadline:       datePtr(2026, time.October, 15),
		CreatedAt:      datePtr(2026, time.August, 1),
	},
	{
		ID:             2,
		Name:           "Cooking Oil 20L Jerrycans",
		Description:    "Refined sunflower oil, factory sealed, shared container load.",
		Category:       "Oils",
		Location:       "Adama",
		Price:          38.50,
		Unit:           "jerrycan",
		TargetQuantity: 150,
		CurrentMembers: 80,
		MaxMembers:     150,
		Status:         "active",
		Deadline:       datePtr(2026, time.September, 30),
		CreatedAt:      datePtr(2026, time.July, 20),
	},
	{
		ID:             3,
		Name:           "Red Onion Crates",
		Description:    "Fresh red onions by the crate from Meki farms.",
		Category:       "Vegetables",
		Location:       "Addis Ababa",
		Price:          12.00,
		Unit:           "crate",
		TargetQuantity: 300,
		CurrentMembers: 300,
		MaxMembers:     300,
		Status:         "completed",
		CreatedAt:      datePtr(2026, time.June, 5),
	},
	{
		ID:             4,
		Name:           "Arabica Green Coffee 60kg",
		Description:    "Grade 2 washed Sidamo beans for roasters, export-surplus lot.",
		Category:       "Coffee",
		Location:       "Hawassa",
		Price:          310.00,
		Unit:           "sack",
		TargetQuantity: 40,
		CurrentMembers: 11,
		MaxMembers:     40,
		Status:         "active",
		Deadline:       datePtr(2026, time.November, 1),
		CreatedAt:      datePtr(2026, time.August, 18),
	},
	{
		ID:             5,
		Name:           "Laundry Detergent Cartons",
		Description:    "Carton of 24 detergent packs at distributor pricing.",
		Category:       "Household",
		Location:       "Bahir Dar",
		Price:          19.75,
		Unit:           "carton",
		TargetQuantity: 120,
		CurrentMembers: 5,
		MaxMembers:     120,
		Status:         "pending",
		CreatedAt:      datePtr(2026, time.August, 25),
	},
}

var fixtureUsers = []core.User{
	{ID: 1, Email: "admin@gebeya.example", FullName: "Platform Admin", Role: "admin", IsAdmin: true, IsActive: true},
	{ID: 2, Email: "trader@gebeya.example", FullName: "Abebe Bikila", Role: "trader", IsActive: true, Location: "Addis Ababa"},
	{ID: 3, Email: "supplier@gebeya.example", FullName: "Meskel Trading PLC", Role: "supplier", IsActive: true, Location: "Adama"},
}

var fixtureProducts = []core.Product{
	{ID: 1, Name: "White Teff Flour", Category: "Grains", Price: 26.50, Unit: "bag", Stock: 420},
	{ID: 2, Name: "Sunflower Oil 20L", Category: "Oils", Price: 41.00, Unit: "jerrycan", Stock: 180},
	{ID: 3, Name: "Washed Sidamo Coffee", Category: "Coffee", Price: 325.00, Unit: "sack", Stock: 55},
	{ID: 4, Name: "Detergent 24-Pack", Category: "Household", Price: 21.00, Unit: "carton", Stock: 240},
}

var fixtureMetadata = core.Metadata{
	Categories:    []string{"Grains", "Oils", "Vegetables", "Coffee", "Household"},
	Locations:     []string{"Addis Ababa", "Adama", "Hawassa", "Bahir Dar", "Dire Dawa"},
	Units:         []string{"bag", "jerrycan", "crate", "sack", "carton"},
	GroupStatuses: []string{"pending", "active", "completed", "cancelled"},
	OrderStatuses: []string{"pending", "paid", "ready", "collected"},
}

// recommendation scores reference fixture groups by index.
var fixtureRecommendations = []struct {
	groupID int
	score   float64
	reason  string
}{
	{1, 0.92, "Popular with traders near you"},
	{4, 0.81, "Based on your coffee purchases"},
	{2, 0.74, "Closing soon in your area"},
}

// Groups returns a copy of the fixture groups.
func Groups() []core.Group {
	return copyGroups(fixtureGroups)
}

// Users returns a copy of the fixture users.
func Users() []core.User {
	out := make([]core.User, len(fixtureUsers))
	copy(out, fixtureUsers)
	return out
}

// Products returns a copy of the fixture products.
func Products() []core.Product {
	out := make([]core.Product, len(fixtureProducts))
	copy(out, fixtureProducts)
	return out
}

// MetadataBundle returns a copy of the fixture metadata.
func MetadataBundle() core.Metadata {
	m := fixtureMetadata
	m.Categories = append([]string(nil), fixtureMetadata.Categories...)
	m.Locations = append([]string(nil), fixtureMetadata.Locations...)
	m.Units = append([]string(nil), fixtureMetadata.Units...)
	m.GroupStatuses = append([]string(nil), fixtureMetadata.GroupStatuses...)
	m.OrderStatuses = append([]string(nil), fixtureMetadata.OrderStatuses...)
	return m
}

func copyGroups(src []core.Group) []core.Group {
	out := make([]core.Group, len(src))
	for i, g := range src {
		out[i] = copyGroup(g)
	}
	return out
}

func copyGroup(g core.Group) core.Group {
	if g.SupplierID != nil {
		v := *g.SupplierID
		g.SupplierID = &v
	}
	if g.Deadline != nil {
		v := *g.Deadline
		g.Deadline = &v
	}
	if g.CreatedAt != nil {
		v := *g.CreatedAt
		g.CreatedAt = &v
	}
	return g
}

func findGroup(id int) (core.Group, bool) {
	for _, g := range fixtureGroups {
		if g.ID == id {
			return copyGroup(g), true
		}
	}
	return core.Group{}, false
}

func findUserByEmail(email string) (core.User, bool) {
	for _, u := range fixtureUsers {
		if u.Email == email {
			return u, true
		}
	}
	return core.User{}, false
}
