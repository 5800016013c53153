package driven

// URLOpener hands a URL to the default handler of the desktop.
// Implementations must not wait for the launched process.
type URLOpener interface {
	Open(url string) error
}
