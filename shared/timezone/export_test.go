package timezone

// Reset forgets the process-wide provider so tests can initialize it again.
func Reset() {
	mu.Lock()
	defer mu.Unlock()

	appProvider = nil
}
