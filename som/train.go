package som

import "context"

// Train runs epochs full passes over the input set, resuming from the current
// weights, lr and nbdWidth. epochs <= 0 is a no-op.
func (t *Trainer) Train(epochs int) {
	_ = t.TrainContext(context.Background(), epochs)
}

// TrainContext is Train with cancellation checked once per epoch boundary.
// On cancellation it returns ctx.Err(); every epoch that started has run to
// completion, including its decay and hook call.
func (t *Trainer) TrainContext(ctx context.Context, epochs int) error {
	for e := 0; e < epochs; e++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		t.epoch()
	}

	return nil
}

// epoch presents every input once, then decays (per-epoch policy) and
// reports to the hook.
func (t *Trainer) epoch() {
	t.phase = PhaseTraining
	if t.opts.shuffle {
		t.opts.rng.Shuffle(len(t.order), func(i, j int) {
			t.order[i], t.order[j] = t.order[j], t.order[i]
		})
	}

	for _, i := range t.order {
		t.step(t.inputs.Row(i))
		if t.opts.decay == DecayPerSample {
			t.Decay()
		}
	}
	if t.opts.decay == DecayPerEpoch {
		t.Decay()
	}
	t.epochs++

	if t.opts.onEpoch != nil {
		t.opts.onEpoch(EpochStats{Epoch: t.epochs, LearningRate: t.lr, NbdWidth: t.nbd})
	}
	t.phase = PhaseTrained
}
