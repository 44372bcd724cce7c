package components

// Stock is the capacity-bounded resource supply of a ResourceSpawner.
type Stock struct {
	Resources Bounded
}

// Depot holds resources deposited at a Spawnpoint, oldest first.
type Depot struct {
	Deposited []Resource
}

// Deposit appends resources in order.
func (d *Depot) Deposit(rs ...Resource) {
	d.Deposited = append(d.Deposited, rs...)
}

// Consume drops the oldest n resources. Returns false if fewer than n are held.
func (d *Depot) Consume(n int) bool {
	if n > len(d.Deposited) {
		return false
	}
	d.Deposited = append(d.Deposited[:0:0], d.Deposited[n:]...)
	return true
}
