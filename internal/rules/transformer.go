package rules

import "github.com/roach88/noether/physics"

// transformerTable covers the ideal transformer: the voltage ratio
// follows the turns ratio and power is conserved, so I_p*N_p = I_s*N_s.
// Turns counts are recoverable from voltages but not from currents.
var transformerTable = &Table{
	Domain: physics.Transformer,
	Rules: []Rule{
		deriveIf(vSec, "V_s = V_p*N_s/N_p", need(vPri, nPri, nSec),
			func(k *physics.Knowns) bool { return k.Get(nPri) != 0 },
			func(k *physics.Knowns) float64 {
				return k.Get(vPri) * k.Get(nSec) / k.Get(nPri)
			}),
		deriveIf(vPri, "V_p = V_s*N_p/N_s", need(vSec, nPri, nSec),
			func(k *physics.Knowns) bool { return k.Get(nSec) != 0 },
			func(k *physics.Knowns) float64 {
				return k.Get(vSec) * k.Get(nPri) / k.Get(nSec)
			}),
		deriveIf(nSec, "N_s = N_p*V_s/V_p", need(vPri, vSec, nPri),
			func(k *physics.Knowns) bool { return k.Get(vPri) != 0 },
			func(k *physics.Knowns) float64 {
				return k.Get(nPri) * k.Get(vSec) / k.Get(vPri)
			}),
		deriveIf(nPri, "N_p = N_s*V_p/V_s", need(vPri, vSec, nSec),
			func(k *physics.Knowns) bool { return k.Get(vSec) != 0 },
			func(k *physics.Knowns) float64 {
				return k.Get(nSec) * k.Get(vPri) / k.Get(vSec)
			}),
		deriveIf(iSec, "I_s = I_p*N_p/N_s", need(iPri, nPri, nSec),
			func(k *physics.Knowns) bool { return k.Get(nSec) != 0 },
			func(k *physics.Knowns) float64 {
				return k.Get(iPri) * k.Get(nPri) / k.Get(nSec)
			}),
		deriveIf(iPri, "I_p = I_s*N_s/N_p", need(iSec, nPri, nSec),
			func(k *physics.Knowns) bool { return k.Get(nPri) != 0 },
			func(k *physics.Knowns) float64 {
				return k.Get(iSec) * k.Get(nSec) / k.Get(nPri)
			}),
	},
}
