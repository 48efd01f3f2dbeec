package catalog

// seedSymptoms is the built-in symptom table. Weights reflect intrinsic
// clinical relevance on an open positive scale.
var seedSymptoms = []Symptom{
	// Respiratorios
	{ID: "TOS_SECA", Name: "Tos seca", Category: CategoryRespiratorio,
		Description: "Tos sin producción de flema", SeverityWeight: 1.2,
		RelatedSymptoms: []string{"TOS_PRODUCTIVA", "DOLOR_GARGANTA"}},
	{ID: "TOS_PRODUCTIVA", Name: "Tos con flema", Category: CategoryRespiratorio,
		Description: "Tos con expectoración de mucosidad", SeverityWeight: 1.5,
		RelatedSymptoms: []string{"TOS_SECA", "CONGESTION_NASAL", "DIFICULTAD_RESPIRAR"}},
	{ID: "DIFICULTAD_RESPIRAR", Name: "Dificultad para respirar", Category: CategoryRespiratorio,
		Description: "Sensación de falta de aire o respiración laboriosa", SeverityWeight: 2.5,
		RelatedSymptoms: []string{"TOS_PRODUCTIVA", "DOLOR_PECHO", "FATIGA"}},
	{ID: "CONGESTION_NASAL", Name: "Congestión nasal", Category: CategoryRespiratorio,
		Description: "Nariz tapada o bloqueada", SeverityWeight: 0.8,
		RelatedSymptoms: []string{"ESTORNUDOS", "DOLOR_CABEZA", "TOS_PRODUCTIVA"}},
	{ID: "ESTORNUDOS", Name: "Estornudos frecuentes", Category: CategoryRespiratorio,
		Description: "Episodios repetidos de estornudos", SeverityWeight: 0.7,
		RelatedSymptoms: []string{"CONGESTION_NASAL", "SECRECION_NASAL"}},
	{ID: "SIBILANCIAS", Name: "Sibilancias", Category: CategoryRespiratorio,
		Description: "Silbidos al respirar", SeverityWeight: 2.0,
		RelatedSymptoms: []string{"DIFICULTAD_RESPIRAR", "TOS_PRODUCTIVA"}},
	{ID: "SECRECION_NASAL", Name: "Secreción nasal", Category: CategoryRespiratorio,
		Description: "Goteo o escurrimiento nasal", SeverityWeight: 0.6,
		RelatedSymptoms: []string{"CONGESTION_NASAL", "ESTORNUDOS"}},

	// Digestivos
	{ID: "NAUSEAS", Name: "Náuseas", Category: CategoryDigestivo,
		Description: "Sensación de malestar estomacal con ganas de vomitar", SeverityWeight: 1.4,
		RelatedSymptoms: []string{"VOMITO", "DOLOR_ABDOMINAL", "PERDIDA_APETITO"}},
	{ID: "VOMITO", Name: "Vómito", Category: CategoryDigestivo,
		Description: "Expulsión forzada del contenido estomacal", SeverityWeight: 1.8,
		RelatedSymptoms: []string{"NAUSEAS", "DIARREA", "DESHIDRATACION"}},
	{ID: "DIARREA", Name: "Diarrea", Category: CategoryDigestivo,
		Description: "Deposiciones líquidas frecuentes", SeverityWeight: 1.6,
		RelatedSymptoms: []string{"DOLOR_ABDOMINAL", "NAUSEAS", "DESHIDRATACION"}},
	{ID: "DOLOR_ABDOMINAL", Name: "Dolor abdominal", Category: CategoryDigestivo,
		Description: "Dolor o molestia en el área del abdomen", SeverityWeight: 1.5,
		RelatedSymptoms: []string{"NAUSEAS", "DIARREA", "ACIDEZ"}},
	{ID: "ACIDEZ", Name: "Acidez estomacal", Category: CategoryDigestivo,
		Description: "Sensación de ardor en el pecho o garganta", SeverityWeight: 1.2,
		RelatedSymptoms: []string{"DOLOR_ABDOMINAL", "REGURGITACION"}},
	{ID: "HINCHAZON", Name: "Hinchazón abdominal", Category: CategoryDigestivo,
		Description: "Sensación de abdomen distendido", SeverityWeight: 1.0,
		RelatedSymptoms: []string{"DOLOR_ABDOMINAL"}},
	{ID: "REGURGITACION", Name: "Regurgitación", Category: CategoryDigestivo,
		Description: "Retorno de comida o líquido a la boca", SeverityWeight: 1.3,
		RelatedSymptoms: []string{"ACIDEZ", "NAUSEAS"}},
	{ID: "DIFICULTAD_TRAGAR", Name: "Dificultad para tragar", Category: CategoryDigestivo,
		Description: "Disfagia o problemas al deglutir", SeverityWeight: 1.9,
		RelatedSymptoms: []string{"DOLOR_GARGANTA"}},
	{ID: "PERDIDA_PESO", Name: "Pérdida de peso inexplicable", Category: CategoryDigestivo,
		Description: "Reducción no intencional del peso corporal", SeverityWeight: 1.8},

	// Generales
	{ID: "FIEBRE", Name: "Fiebre", Category: CategoryGeneral,
		Description: "Temperatura corporal elevada (>38°C)", SeverityWeight: 2.0,
		RelatedSymptoms: []string{"ESCALOFRIOS", "SUDORACION", "FATIGA"}},
	{ID: "ESCALOFRIOS", Name: "Escalofríos", Category: CategoryGeneral,
		Description: "Sensación de frío con temblores", SeverityWeight: 1.5,
		RelatedSymptoms: []string{"FIEBRE", "SUDORACION"}},
	{ID: "FATIGA", Name: "Fatiga extrema", Category: CategoryGeneral,
		Description: "Cansancio intenso y falta de energía", SeverityWeight: 1.3,
		RelatedSymptoms: []string{"DEBILIDAD", "MALESTAR_GENERAL"}},
	{ID: "SUDORACION", Name: "Sudoración excesiva", Category: CategoryGeneral,
		Description: "Transpiración anormal o nocturna", SeverityWeight: 1.1,
		RelatedSymptoms: []string{"FIEBRE", "ESCALOFRIOS"}},
	{ID: "PERDIDA_APETITO", Name: "Pérdida de apetito", Category: CategoryGeneral,
		Description: "Falta de deseo de comer", SeverityWeight: 1.2,
		RelatedSymptoms: []string{"NAUSEAS", "MALESTAR_GENERAL"}},
	{ID: "MALESTAR_GENERAL", Name: "Malestar general", Category: CategoryGeneral,
		Description: "Sensación general de enfermedad", SeverityWeight: 1.0,
		RelatedSymptoms: []string{"FATIGA"}},
	{ID: "DESHIDRATACION", Name: "Deshidratación", Category: CategoryGeneral,
		Description: "Pérdida excesiva de líquidos corporales", SeverityWeight: 2.0,
		RelatedSymptoms: []string{"VOMITO", "DIARREA"}},

	// Neurológicos
	{ID: "DOLOR_CABEZA", Name: "Dolor de cabeza", Category: CategoryNeurologico,
		Description: "Cefalea de intensidad variable", SeverityWeight: 1.3,
		RelatedSymptoms: []string{"MAREOS", "VISION_BORROSA"}},
	{ID: "MAREOS", Name: "Mareos", Category: CategoryNeurologico,
		Description: "Sensación de vértigo o inestabilidad", SeverityWeight: 1.5,
		RelatedSymptoms: []string{"DOLOR_CABEZA", "NAUSEAS"}},
	{ID: "CONFUSION", Name: "Confusión mental", Category: CategoryNeurologico,
		Description: "Dificultad para pensar con claridad", SeverityWeight: 2.2,
		RelatedSymptoms: []string{"MAREOS", "DOLOR_CABEZA"}},

	// Musculares
	{ID: "DOLOR_MUSCULAR", Name: "Dolor muscular", Category: CategoryMuscular,
		Description: "Dolor en músculos del cuerpo", SeverityWeight: 1.4,
		RelatedSymptoms: []string{"FATIGA", "DOLOR_ARTICULAR"}},
	{ID: "DOLOR_ARTICULAR", Name: "Dolor articular", Category: CategoryMuscular,
		Description: "Dolor en articulaciones", SeverityWeight: 1.5,
		RelatedSymptoms: []string{"DOLOR_MUSCULAR", "RIGIDEZ"}},
	{ID: "DEBILIDAD", Name: "Debilidad muscular", Category: CategoryMuscular,
		Description: "Pérdida de fuerza en músculos", SeverityWeight: 1.6,
		RelatedSymptoms: []string{"FATIGA"}},
	{ID: "RIGIDEZ", Name: "Rigidez muscular", Category: CategoryMuscular,
		Description: "Tensión o dureza en los músculos", SeverityWeight: 1.3,
		RelatedSymptoms: []string{"DOLOR_MUSCULAR", "DOLOR_ARTICULAR"}},

	// Dermatológicos
	{ID: "ERUPCION", Name: "Erupción cutánea", Category: CategoryDermatologico,
		Description: "Cambios visibles en la piel", SeverityWeight: 1.7,
		RelatedSymptoms: []string{"PICAZON_PIEL", "ENROJECIMIENTO"}},
	{ID: "PICAZON_PIEL", Name: "Picazón en la piel", Category: CategoryDermatologico,
		Description: "Comezón o irritación cutánea", SeverityWeight: 1.0,
		RelatedSymptoms: []string{"ERUPCION"}},
	{ID: "ENROJECIMIENTO", Name: "Enrojecimiento de la piel", Category: CategoryDermatologico,
		Description: "Eritema o coloración rojiza", SeverityWeight: 1.1,
		RelatedSymptoms: []string{"ERUPCION", "PICAZON_PIEL"}},

	// Cardiovasculares
	{ID: "DOLOR_PECHO", Name: "Dolor en el pecho", Category: CategoryCardiovascular,
		Description: "Dolor o presión en área torácica", SeverityWeight: 2.8,
		RelatedSymptoms: []string{"DIFICULTAD_RESPIRAR", "PALPITACIONES"}},
	{ID: "PALPITACIONES", Name: "Palpitaciones", Category: CategoryCardiovascular,
		Description: "Sensación de latidos cardíacos irregulares", SeverityWeight: 1.8,
		RelatedSymptoms: []string{"DOLOR_PECHO", "MAREOS"}},

	// Urinarios
	{ID: "DOLOR_ORINAR", Name: "Dolor al orinar", Category: CategoryUrinario,
		Description: "Ardor o molestia durante la micción", SeverityWeight: 1.9,
		RelatedSymptoms: []string{"FRECUENCIA_URINARIA", "URGENCIA_URINARIA"}},
	{ID: "FRECUENCIA_URINARIA", Name: "Frecuencia urinaria aumentada", Category: CategoryUrinario,
		Description: "Necesidad de orinar con mayor frecuencia", SeverityWeight: 1.3,
		RelatedSymptoms: []string{"DOLOR_ORINAR", "URGENCIA_URINARIA"}},
	{ID: "URGENCIA_URINARIA", Name: "Urgencia urinaria", Category: CategoryUrinario,
		Description: "Necesidad repentina e intensa de orinar", SeverityWeight: 1.6,
		RelatedSymptoms: []string{"FRECUENCIA_URINARIA"}},
	{ID: "ORINA_TURBIA", Name: "Orina turbia", Category: CategoryUrinario,
		Description: "Orina con apariencia no clara", SeverityWeight: 1.5,
		RelatedSymptoms: []string{"DOLOR_ORINAR"}},

	// Oftalmológicos
	{ID: "VISION_BORROSA", Name: "Visión borrosa", Category: CategoryOftalmologico,
		Description: "Dificultad para ver con claridad", SeverityWeight: 1.6,
		RelatedSymptoms: []string{"DOLOR_CABEZA", "MAREOS"}},
	{ID: "OJOS_ROJOS", Name: "Ojos rojos", Category: CategoryOftalmologico,
		Description: "Enrojecimiento ocular", SeverityWeight: 1.2,
		RelatedSymptoms: []string{"PICAZON_OJOS", "LAGRIMEO"}},
	{ID: "PICAZON_OJOS", Name: "Picazón en los ojos", Category: CategoryOftalmologico,
		Description: "Comezón ocular", SeverityWeight: 1.0,
		RelatedSymptoms: []string{"OJOS_ROJOS", "LAGRIMEO"}},
	{ID: "LAGRIMEO", Name: "Lagrimeo excesivo", Category: CategoryOftalmologico,
		Description: "Producción excesiva de lágrimas", SeverityWeight: 0.9,
		RelatedSymptoms: []string{"OJOS_ROJOS", "PICAZON_OJOS"}},
	{ID: "SECRECION_OCULAR", Name: "Secreción ocular", Category: CategoryOftalmologico,
		Description: "Legañas o descarga del ojo", SeverityWeight: 1.3,
		RelatedSymptoms: []string{"OJOS_ROJOS"}},

	// Otorrinolaringológicos
	{ID: "DOLOR_GARGANTA", Name: "Dolor de garganta", Category: CategoryOtorrinolaringologico,
		Description: "Dolor, irritación o picazón en la garganta", SeverityWeight: 1.3,
		RelatedSymptoms: []string{"TOS_SECA", "FIEBRE", "DIFICULTAD_TRAGAR"}},
	{ID: "DOLOR_OIDO", Name: "Dolor de oído", Category: CategoryOtorrinolaringologico,
		Description: "Otalgia o molestia en el oído", SeverityWeight: 1.7,
		RelatedSymptoms: []string{"DOLOR_GARGANTA"}},
	{ID: "RONQUERA", Name: "Ronquera", Category: CategoryOtorrinolaringologico,
		Description: "Cambio en el tono de voz", SeverityWeight: 1.3,
		RelatedSymptoms: []string{"DOLOR_GARGANTA", "TOS_SECA"}},
	{ID: "MAL_ALIENTO", Name: "Mal aliento", Category: CategoryOtorrinolaringologico,
		Description: "Halitosis o aliento desagradable", SeverityWeight: 0.8},
	{ID: "GANGLIOS_INFLAMADOS", Name: "Ganglios inflamados", Category: CategoryOtorrinolaringologico,
		Description: "Linfadenopatía cervical", SeverityWeight: 1.7,
		RelatedSymptoms: []string{"DOLOR_GARGANTA", "FIEBRE"}},
}
