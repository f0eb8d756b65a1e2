// internal/component/economy.go
package component

// Economy — жизни, деньги и очки игрока.
type Economy struct {
	Lives int
	Money int
	Score int
}
