// internal/session/energy.go
package session

// Action is an engagement gesture forwarded by the client feed.
type Action string

const (
	ActionLike    Action = "like"
	ActionComment Action = "comment"
	ActionShare   Action = "share"
	ActionPost    Action = "post"
)

// PointsTable maps an engagement action to the energy it grants.
type PointsTable map[Action]float64

// DefaultEnergyMax is used when no threshold is configured.
const DefaultEnergyMax = 1000

// EnergyMeter is a bounded engagement counter. Energy stays in
// [0, max); every full multiple of max absorbed by an earn converts
// into one whole coin. The coin balance never decreases within a
// session and nothing here is persisted.
type EnergyMeter struct {
	max    float64
	energy float64
	coins  int
}

func NewEnergyMeter(max float64) *EnergyMeter {
	if max <= 0 {
		max = DefaultEnergyMax
	}
	return &EnergyMeter{max: max}
}

// Earn adds amount to the meter and converts overflow into coins.
// A single large earn can cross the threshold several times; each
// crossing grants one coin. Zero or negative amounts are ignored.
// Returns the number of coins granted by this earn.
func (m *EnergyMeter) Earn(amount float64) int {
	if amount <= 0 {
		return 0
	}

	granted := 0
	total := m.energy + amount
	for total >= m.max {
		total -= m.max
		m.coins++
		granted++
	}
	m.energy = total
	return granted
}

func (m *EnergyMeter) Energy() float64 {
	return m.energy
}

func (m *EnergyMeter) Max() float64 {
	return m.max
}

func (m *EnergyMeter) Coins() int {
	return m.coins
}
