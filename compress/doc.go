// Package compress maps unbounded raw indicator values into the bounded
// score range (-50, 50) through the standard normal CDF, scaled by the
// robust spread of a trailing history window.
//
// 🚀 What is compress?
//
//	The final stage of every indicator pipeline:
//	  • Scaling  — 100·Φ(c·raw/iqr) − 50, sign-preserving (no centering)
//	  • ToRange  — 100·Φ(c·(raw−median)/iqr) − 50, centered on the window median
//
// The two are deliberately separate: some indicators are sign-meaningful
// (an oscillator's zero means something — use Scaling), others need full
// normalization against their own history (use ToRange). The choice, the
// compression constant c and the window length are per-indicator tunables;
// no single c fits all indicator families.
//
// ✨ Guards:
//   - Non-finite raw or iqr ⇒ NaN (poisoned windows stay poisoned)
//   - iqr below 1e-10 ⇒ 0.0, the neutral score (a briefly flat market must
//     not blow up the division)
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/lvlsig/compress"
//
//	med := robust.Median(history)
//	iqr := robust.IQR(history)
//	score := compress.ToRange(raw, med, iqr, compress.DefaultRangeC)
//
// Complexity: O(1) per call, no allocations.
package compress
