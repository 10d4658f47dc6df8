package model

import "github.com/tablutai/tablut/pkg/eval"

// clippedReLU clamps x to [0, 1], mirroring sfnnue/layers/clipped_relu.go's
// role (bound the activation before the next layer) but in float32
// space rather than NNUE's quantized int8.
func clippedReLU(x float32) float32 {
	switch {
	case x < 0:
		return 0
	case x > 1:
		return 1
	default:
		return x
	}
}

// Forward evaluates the network on a tensor: a same-padding 3x3
// convolution per hidden feature map, clipped-ReLU, global average pool,
// then an affine output head (sfnnue/layers.AffineTransform's role,
// shrunk to a single output unit).
func (w *Weights) Forward(t *eval.Tensor) float64 {
	var out float32 = w.OutBias

	for h := 0; h < w.Hidden; h++ {
		var sum float32
		for r := 0; r < 9; r++ {
			for c := 0; c < 9; c++ {
				sum += clippedReLU(convAt(t, &w.ConvKernels[h], w.ConvBias[h], r, c))
			}
		}
		pooled := sum / float32(9*9)
		out += pooled * w.OutWeights[h]
	}
	return float64(out)
}

// convAt computes one output unit of a same-padding 3x3 convolution
// centered at (r,c), zero-padding beyond the board edge.
func convAt(t *eval.Tensor, kernel *[eval.NumChannels][3][3]float32, bias float32, r, c int) float32 {
	sum := bias
	for ch := 0; ch < eval.NumChannels; ch++ {
		for ky := -1; ky <= 1; ky++ {
			for kx := -1; kx <= 1; kx++ {
				rr, cc := r+ky, c+kx
				if rr < 0 || rr >= 9 || cc < 0 || cc >= 9 {
					continue
				}
				sum += t[ch][rr][cc] * kernel[ch][ky+1][kx+1]
			}
		}
	}
	return sum
}
