package entity

// Pipelines de la corrida.
const (
	PipelineAccessories  = "accessories"
	PipelineMaintenances = "maintenances"
)

// OutcomeKind resultado de reconciliar un registro.
type OutcomeKind string

const (
	OutcomeUpdated    OutcomeKind = "UPDATED"
	OutcomeInserted   OutcomeKind = "INSERTED"
	OutcomeNotFound   OutcomeKind = "NOT_FOUND"
	OutcomeQueryError OutcomeKind = "QUERY_ERROR"
	OutcomeWriteError OutcomeKind = "WRITE_ERROR"
)

// IsFailure indica si el resultado cuenta como error del registro.
// NOT_FOUND es un salto esperado (el accesorio no existe en la tienda), no un error.
func (k OutcomeKind) IsFailure() bool {
	return k == OutcomeQueryError || k == OutcomeWriteError
}

// RecordOutcome resultado de un registro individual, en el orden en que se procesó.
type RecordOutcome struct {
	Key   string // codigoStock o id del DNS
	Label string // descripción
	Kind  OutcomeKind
	Err   error
}

// SyncReport resumen de una pasada de reconciliación contra un destino.
type SyncReport struct {
	Pipeline string
	Total    int
	Outcomes []RecordOutcome
}

// Add registra el resultado de un registro.
func (r *SyncReport) Add(o RecordOutcome) {
	r.Outcomes = append(r.Outcomes, o)
}

// Count cuenta los registros con el resultado indicado.
func (r *SyncReport) Count(kind OutcomeKind) int {
	n := 0
	for _, o := range r.Outcomes {
		if o.Kind == kind {
			n++
		}
	}
	return n
}

// Failed cuenta los registros con error de consulta o escritura.
func (r *SyncReport) Failed() int {
	n := 0
	for _, o := range r.Outcomes {
		if o.Kind.IsFailure() {
			n++
		}
	}
	return n
}

// Processed cantidad de registros efectivamente procesados (puede ser menor a Total si se canceló).
func (r *SyncReport) Processed() int {
	return len(r.Outcomes)
}

// RunStatus estado final de la corrida.
type RunStatus string

const (
	RunCompleted           RunStatus = "completed"
	RunCompletedWithErrors RunStatus = "completed_with_errors"
	RunAborted             RunStatus = "aborted"
)

// RunResult resultado de una corrida completa (accesorios y luego mantenimientos).
type RunResult struct {
	RunID        string
	Status       RunStatus
	Accessories  *SyncReport
	Maintenances *SyncReport
	Err          error // causa del aborto, nil si no abortó
}
