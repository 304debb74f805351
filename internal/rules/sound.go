package rules

import (
	"math"

	"github.com/roach88/noether/physics"
)

// soundTable covers straight-line Doppler shift. Positive source and
// observer speeds mean approach; negative means recession. The medium
// speed defaults to the speed of sound in air when the caller omits it.
//
// The combined form fires when both movers are known; the single-mover
// forms fire when the other mover is absent or zero. A source moving at
// exactly the medium speed leaves the observed frequency undefined.
//
// The reverse forms recover a mover's speed from the frequency pair and
// skip when the implied speed is implausibly past the medium speed
// (|speed| >= 1.5*v_medium), which in practice flags swapped inputs.
var soundTable = &Table{
	Domain: physics.Sound,
	Rules: []Rule{
		deriveErr(fObs, "f_observed = f_source*(v_medium + v_observer)/(v_medium - v_source)",
			need(fSrc, vSrc, vObs, vMed),
			func(k *physics.Knowns) (float64, error) {
				const eq = "f_observed = f_source*(v_medium + v_observer)/(v_medium - v_source)"
				if k.Get(vMed)-k.Get(vSrc) == 0 {
					return 0, divZero(fObs, eq)
				}
				return k.Get(fSrc) * (k.Get(vMed) + k.Get(vObs)) / (k.Get(vMed) - k.Get(vSrc)), nil
			}),
		deriveErrIf(fObs, "f_observed = f_source*v_medium/(v_medium - v_source)",
			need(fSrc, vSrc, vMed),
			func(k *physics.Knowns) bool { return !k.Has(vObs) || k.Get(vObs) == 0 },
			func(k *physics.Knowns) (float64, error) {
				const eq = "f_observed = f_source*v_medium/(v_medium - v_source)"
				if k.Get(vMed)-k.Get(vSrc) == 0 {
					return 0, divZero(fObs, eq)
				}
				return k.Get(fSrc) * k.Get(vMed) / (k.Get(vMed) - k.Get(vSrc)), nil
			}),
		deriveIf(fObs, "f_observed = f_source*(v_medium + v_observer)/v_medium",
			need(fSrc, vObs, vMed),
			func(k *physics.Knowns) bool {
				return (!k.Has(vSrc) || k.Get(vSrc) == 0) && k.Get(vMed) != 0
			},
			func(k *physics.Knowns) float64 {
				return k.Get(fSrc) * (k.Get(vMed) + k.Get(vObs)) / k.Get(vMed)
			}),
		deriveIf(fSrc, "f_source = f_observed*(v_medium - v_source)/v_medium",
			need(fObs, vSrc, vMed),
			func(k *physics.Knowns) bool {
				return (!k.Has(vObs) || k.Get(vObs) == 0) && k.Get(vMed) != 0
			},
			func(k *physics.Knowns) float64 {
				return k.Get(fObs) * (k.Get(vMed) - k.Get(vSrc)) / k.Get(vMed)
			}),
		deriveIf(fSrc, "f_source = f_observed*v_medium/(v_medium + v_observer)",
			need(fObs, vObs, vMed),
			func(k *physics.Knowns) bool {
				return (!k.Has(vSrc) || k.Get(vSrc) == 0) && k.Get(vMed)+k.Get(vObs) != 0
			},
			func(k *physics.Knowns) float64 {
				return k.Get(fObs) * k.Get(vMed) / (k.Get(vMed) + k.Get(vObs))
			}),
		deriveIf(vSrc, "v_source = v_medium*(1 - f_source/f_observed)",
			need(fSrc, fObs, vMed),
			func(k *physics.Knowns) bool {
				if k.Get(fObs) == 0 || (k.Has(vObs) && k.Get(vObs) != 0) {
					return false
				}
				cand := k.Get(vMed) * (1 - k.Get(fSrc)/k.Get(fObs))
				return math.Abs(cand) < 1.5*k.Get(vMed)
			},
			func(k *physics.Knowns) float64 {
				return k.Get(vMed) * (1 - k.Get(fSrc)/k.Get(fObs))
			}),
		deriveIf(vObs, "v_observer = v_medium*(f_observed/f_source - 1)",
			need(fSrc, fObs, vMed),
			func(k *physics.Knowns) bool {
				if k.Get(fSrc) == 0 || (k.Has(vSrc) && k.Get(vSrc) != 0) {
					return false
				}
				cand := k.Get(vMed) * (k.Get(fObs)/k.Get(fSrc) - 1)
				return math.Abs(cand) < 1.5*k.Get(vMed)
			},
			func(k *physics.Knowns) float64 {
				return k.Get(vMed) * (k.Get(fObs)/k.Get(fSrc) - 1)
			}),
	},
}
