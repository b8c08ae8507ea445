package mapping

import (
	"github.com/finware/glcore/internal/core/domain"
	"github.com/finware/glcore/internal/models"
)

// ToDomainCloseTask converts a model CloseTask to a domain CloseTask
func ToDomainCloseTask(m models.CloseTask) domain.CloseTask {
	return domain.CloseTask{
		TaskID:      m.TaskID,
		LedgerID:    m.LedgerID,
		PeriodName:  m.PeriodName,
		Sequence:    m.Sequence,
		Name:        m.Name,
		Required:    m.Required,
		Completed:   m.Completed,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainCloseTaskSlice converts a slice of model CloseTasks to domain CloseTasks
func ToDomainCloseTaskSlice(ms []models.CloseTask) []domain.CloseTask {
	ds := make([]domain.CloseTask, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainCloseTask(m)
	}
	return ds
}
