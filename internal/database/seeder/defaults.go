package seeder

// Defaults returns the demo dataset seeders in dependency order.
func Defaults() []Seeder {
	return []Seeder{
		UsersSeeder{},
		JobsSeeder{},
		ApplicationsSeeder{},
	}
}
