// Package dataset assembles synthesized waveforms into a segmented,
// timestamped fixture dataset.
//
// A run writes one BSON record per segment plus one YAML summary into the
// output directory. Segments are nominally 25 minutes of data scheduled 30
// minutes apart; the 5-minute gap exists only in the naming and timestamp
// scheme, not as missing samples. Segment files follow
//
//	{case}_segment{N}_{start}_{end}.bson
//
// with N the 1-based segment index and start/end formatted as
// YYYYMMDDHHMMSS.
//
// Generation is strictly sequential. The first error aborts the run and
// leaves already-written segment files in place; there is no rollback.
package dataset
