// internal/component/combat.go
package component

// Combat — компонент для башен, управляющий атакой.
type Combat struct {
	Damage   float64 // Текущий урон (растёт от улучшений и аур поддержки)
	Range    float64 // Радиус действия в клетках
	Interval int     // Перезарядка в тиках после выстрела
	Cooldown int     // Оставшиеся тики до следующего выстрела
}
