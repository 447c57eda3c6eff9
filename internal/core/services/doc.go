// Package services implements the driving port interfaces.
//
// ResearchService binds caller arguments to a catalogue row and issues the
// request through a driven.ResourceClient; it also composes the author
// resolution chain. DocumentService fetches a URL and hands the bytes to the
// normaliser registered for its media type. SettingsService reads and
// validates configuration held in a driven.ConfigStore.
package services
