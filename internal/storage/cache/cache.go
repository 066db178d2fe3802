package cache

import "sync"

// Cache keeps the shuffled choice order of the question currently on screen,
// keyed by quiz id. Redisplaying the same question (bad input, re-prompt)
// must not reshuffle the choices; answering the question drops the entry so
// the next question gets a fresh order.
type Cache struct {
	mu      sync.Mutex
	choices map[int64][]string
}

func NewCache() *Cache {
	return &Cache{
		choices: make(map[int64][]string),
	}
}

func (c *Cache) SetChoices(quizID int64, choices []string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.choices[quizID] = choices
}

func (c *Cache) Choices(quizID int64) ([]string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	choices, exists := c.choices[quizID]
	return choices, exists
}

func (c *Cache) DeleteChoices(quizID int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.choices, quizID)
}
