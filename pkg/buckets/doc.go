// Package buckets implements the headless state engine of a sortable buckets
// control: ordered bucket rows of items that can be reordered by drag gestures
// or moved between adjacent buckets, with a global text filter that highlights
// matches and cycles a focus cursor through them.
//
// An Instance owns the state and publishes every change through the
// OnStateChange callback. The view layer renders the projection returned by
// GetBuckets and supplies live element handles through a
// types.ElementRegistry. During a drag gesture the engine repositions the
// dragged element directly and keeps an interim copy of the matrix; the state
// is only published when the gesture ends.
package buckets
