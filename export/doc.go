// Package export defines the serializable chart payloads handed to the
// presentation layer.
//
// A Payload bundles the series of one chart (scatter points, a fitted trend
// line, a survival step curve, or count bars) with its statistics panel.
// Statistics carry an Illustrative flag: values computed from the data (R²,
// RMSE of a linear fit) ship with the flag unset, while the placeholder
// numbers some panels display (p-values, AUC, dispersion) are marked
// Illustrative so renderers must badge them as such rather than present them
// as fitted results.
//
// Marshal produces a self-describing byte payload: a two-byte header (magic
// plus compression type) followed by the JSON document, optionally
// compressed. Unmarshal reverses it without the caller having to know which
// codec was used.
package export
