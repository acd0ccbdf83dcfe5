// Package presenter adapts the push-style notification callbacks into
// snapshots and event feeds for the HTTP surface.
//
// [Hub] implements the service layer Presenter. It keeps the latest device
// and notification lists, applies the display count and the header and body
// truncation limits, and fans every callback out to subscribers. Slow
// subscribers lose events instead of blocking the stream session.
package presenter
