package classifier

import (
	"github.com/tphakala/vowelnet/internal/logger"
	"github.com/tphakala/vowelnet/internal/vowel"
)

// Classifier predicts against the live contents of a store. The fitted model
// is cached by store version and refitted only after the store changes.
type Classifier struct {
	store *vowel.Store
	k     int
	log   logger.Logger

	model        *KNN
	modelVersion uint64
}

// New binds a classifier to store. k <= 0 selects DefaultK.
func New(store *vowel.Store, k int, log logger.Logger) *Classifier {
	if k <= 0 {
		k = DefaultK
	}
	if log == nil {
		log = logger.Global().Module("classifier")
	}
	return &Classifier{store: store, k: k, log: log}
}

// K returns the neighbor count.
func (c *Classifier) K() int {
	return c.k
}

// Predict classifies pair using the store as it is now.
func (c *Classifier) Predict(pair vowel.Pair) (Prediction, error) {
	model, err := c.current()
	if err != nil {
		return Prediction{}, err
	}
	return model.Predict(pair)
}

// current returns a model fitted on the current store snapshot.
func (c *Classifier) current() (*KNN, error) {
	version := c.store.Version()
	if c.model != nil && c.modelVersion == version {
		return c.model, nil
	}

	model := NewKNN(c.k)
	if err := model.Fit(c.store.Examples()); err != nil {
		c.model = nil
		return nil, err
	}

	c.model = model
	c.modelVersion = version
	c.log.Debug("model fitted",
		logger.Int("examples", c.store.Total()),
		logger.Int("k", c.k),
		logger.Uint64("store_version", version))

	return model, nil
}
