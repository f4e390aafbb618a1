package relink_cultural_events

// Response итог перепривязки
type Response struct {
	Linked   int // событий с найденным монастырем
	Unlinked int // событий, чей монастырь не найден
	Updated  int // событий, у которых monastery_id изменился
}
