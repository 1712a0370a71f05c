// Copyright (c) 2025 The Solacecore developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package validate

import "github.com/solacechain/solacecore/chain"

// DeleteIntermediateOutputs makes a single pass over v's already-sorted
// Inputs and Outputs, dropping any input/output pair with an identical
// CommitmentAndMaturity — the same cancellation Combine performs during
// a merge, applied here to a single already-unioned vector set (spec
// §4.8).
func (v *TxVectors) DeleteIntermediateOutputs() {
	v.Inputs, v.Outputs = deleteIntermediate(v.Inputs, v.Outputs)
}

func deleteIntermediate(inputs []*chain.Input, outputs []*chain.Output) ([]*chain.Input, []*chain.Output) {
	i, o := 0, 0
	keptIn := inputs[:0:0]
	keptOut := outputs[:0:0]
	for i < len(inputs) && o < len(outputs) {
		c := inputs[i].CommitmentAndMaturity.Cmp(outputs[o].CommitmentAndMaturity)
		switch {
		case c == 0:
			i++
			o++
		case c < 0:
			keptIn = append(keptIn, inputs[i])
			i++
		default:
			keptOut = append(keptOut, outputs[o])
			o++
		}
	}
	keptIn = append(keptIn, inputs[i:]...)
	keptOut = append(keptOut, outputs[o:]...)
	return keptIn, keptOut
}
