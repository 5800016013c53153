// Package services implements the driving ports on top of the driven ports.
//
// Services hold no terminal or network code of their own: SearchService
// chains a Fetcher and an Extractor, ResultActionService forwards to a
// URLOpener, and SettingsService overlays a ConfigStore on the defaults.
package services
