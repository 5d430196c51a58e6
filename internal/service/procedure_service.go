package service

import "github.com/noah-isme/unigov-client/internal/models"

// ProceduresIntro heads the procedures page.
const ProceduresIntro = "Retrouvez ici toutes les démarches administratives essentielles pour votre parcours étudiant."

var procedureCatalogue = []models.Procedure{
	{
		Title:       "Réinscription Universitaire",
		Description: "Guide étape par étape pour effectuer votre réinscription annuelle.",
		Steps: []string{
			"Payer les frais d'inscription (se munir de la Carte Technologique).",
			"Remplir le formulaire en ligne sur le site inscription.tn.",
			"Imprimer le reçu de paiement.",
			"Déposer le dossier (Reçu + Photos + Copie CIN) au service scolarité avant le 15 Septembre.",
		},
	},
	{
		Title:       "Permutation de Groupe",
		Description: "Changement de groupe uniquement par échange mutuel (Permutation).",
		Steps: []string{
			"Trouver un binôme souhaitant faire l'échange inverse (Groupe A vers B et B vers A).",
			"Remplir le formulaire de 'Demande de Permutation' en double exemplaire.",
			"Signature légalisée des deux étudiants.",
			"Déposer la demande au service scolarité avant le 30 Septembre.",
		},
	},
}

// ProceduresService serves the fixed catalogue of administrative procedures.
// It never calls the API.
type ProceduresService struct{}

// NewProceduresService constructs the service.
func NewProceduresService() *ProceduresService {
	return &ProceduresService{}
}

// List returns the catalogue in display order. Steps are copied so callers
// cannot alter the catalogue.
func (s *ProceduresService) List() View[[]models.Procedure] {
	out := make([]models.Procedure, len(procedureCatalogue))
	for i, p := range procedureCatalogue {
		p.Steps = append([]string(nil), p.Steps...)
		out[i] = p
	}
	return loaded(out, nil)
}
