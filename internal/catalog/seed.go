package catalog

// SeedBooks returns the initial catalog contents. The catalog is never
// structurally resized after startup, so this is the complete key set for the
// life of the process.
func SeedBooks() []Book {
	return []Book{
		{ISBN: "1", Title: "Things Fall Apart", Author: "Chinua Achebe"},
		{ISBN: "2", Title: "Fairy tales", Author: "Hans Christian Andersen"},
		{ISBN: "3", Title: "The Divine Comedy", Author: "Dante Alighieri"},
		{ISBN: "4", Title: "The Epic Of Gilgamesh", Author: "Unknown"},
		{ISBN: "5", Title: "The Book Of Job", Author: "Unknown"},
		{ISBN: "6", Title: "One Thousand and One Nights", Author: "Unknown"},
		{ISBN: "7", Title: "Njal's Saga", Author: "Unknown"},
		{ISBN: "8", Title: "Pride and Prejudice", Author: "Jane Austen"},
		{ISBN: "9", Title: "Le Pere Goriot", Author: "Honore de Balzac"},
		{ISBN: "10", Title: "Molloy, Malone Dies, The Unnamable, the trilogy", Author: "Samuel Beckett"},
	}
}
