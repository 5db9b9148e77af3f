package clickstream

// Element — серверное представление узла дерева элементов, которое клиент
// присылает вместе с взаимодействием: сам узел плюс цепочка предков.
type Element struct {
	Tag     string            `json:"tag"`
	Text    string            `json:"text"`
	Dataset map[string]string `json:"dataset"`
	Parent  *Element          `json:"parent"`
}

// Closest walks up from the element (inclusive) to the nearest ancestor
// carrying the given dataset key. Returns nil when no tagged ancestor
// exists — such interactions are not tracked.
func (e *Element) Closest(key string) *Element {
	for node := e; node != nil; node = node.Parent {
		if node.Dataset != nil {
			if _, ok := node.Dataset[key]; ok {
				return node
			}
		}
	}
	return nil
}
