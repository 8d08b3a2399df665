package pool

import (
	"sync"
	"time"

	"github.com/max-chem-eng/nanolog/models"
)

var recordPool = sync.Pool{
	New: func() interface{} {
		return new(models.Record)
	},
}

func AcquireRecord() *models.Record {
	return recordPool.Get().(*models.Record)
}

func ReleaseRecord(r *models.Record) {
	r.Seq = 0
	r.Level = 0
	r.Tag = ""
	r.Timestamp = time.Time{}
	r.Body = ""
	recordPool.Put(r)
}
