package catalog

// seedDiseases holds the built-in diagnostic rules. Some rules reference
// symptom ids that the symptom registry does not define (DOLOR_FACIAL,
// FOTOFOBIA, DOLOR_ABDOMINAL_BAJO, ...); the engine tolerates these and
// the Validate pass surfaces them as orphaned references.
var seedDiseases = []Disease{
	{
		ID:                "GRIPE",
		Name:              "Gripe (Influenza)",
		Description:       "Infección viral aguda del sistema respiratorio causada por el virus de la influenza",
		Category:          "Infección Respiratoria Viral",
		RequiredSymptoms:  []string{"FIEBRE", "FATIGA"},
		CommonSymptoms:    []string{"DOLOR_CABEZA", "DOLOR_MUSCULAR", "TOS_SECA", "ESCALOFRIOS", "DOLOR_GARGANTA", "SUDORACION"},
		OptionalSymptoms:  []string{"CONGESTION_NASAL", "ESTORNUDOS", "NAUSEAS", "PERDIDA_APETITO"},
		ExcludingSymptoms: []string{"DIARREA", "VOMITO", "ERUPCION"},
		Severity:          SeverityModerada,
		Urgency:           UrgencyAutocuidado,
		Recommendations: []string{
			"Reposo absoluto durante 3-5 días",
			"Mantener hidratación abundante (2-3 litros de agua al día)",
			"Tomar paracetamol o ibuprofeno para fiebre y dolores",
			"Evitar contacto cercano con otras personas",
			"Usar mascarilla si debe salir",
			"Consumir alimentos nutritivos y ligeros",
		},
		WarningSigns: []string{
			"Fiebre mayor a 39.5°C que no cede con medicamentos",
			"Dificultad respiratoria severa",
			"Dolor de pecho persistente",
			"Confusión o mareos intensos",
			"Vómito persistente",
			"Síntomas que mejoran pero luego empeoran",
		},
		Prevention: []string{
			"Vacunarse anualmente contra la influenza",
			"Lavado frecuente de manos",
			"Evitar tocarse la cara",
			"Mantener distancia de personas enfermas",
		},
		GeneralTreatment: []string{
			"Antivirales (si se diagnostica dentro de las primeras 48 horas)",
			"Antipiréticos para la fiebre",
			"Analgésicos para dolores musculares",
		},
		TypicalDuration: "5-7 días (puede extenderse a 2 semanas)",
		Contagious:      true,
	},
	{
		ID:                "RESFRIADO",
		Name:              "Resfriado Común",
		Description:       "Infección viral leve del tracto respiratorio superior",
		Category:          "Infección Respiratoria Viral",
		RequiredSymptoms:  []string{"CONGESTION_NASAL"},
		CommonSymptoms:    []string{"ESTORNUDOS", "DOLOR_GARGANTA", "TOS_SECA", "DOLOR_CABEZA"},
		OptionalSymptoms:  []string{"FATIGA", "FIEBRE", "DOLOR_MUSCULAR"},
		ExcludingSymptoms: []string{"FIEBRE"}, // fiebre es rara en resfriado
		Severity:          SeverityLeve,
		Urgency:           UrgencyAutocuidado,
		Recommendations: []string{
			"Descansar adecuadamente",
			"Beber líquidos calientes (té, caldo)",
			"Hacer gárgaras con agua tibia y sal",
			"Usar descongestionantes nasales si es necesario",
			"Humidificar el ambiente",
		},
		WarningSigns: []string{
			"Síntomas que duran más de 10 días",
			"Fiebre alta (mayor a 38.5°C)",
			"Dificultad para respirar",
			"Dolor de oído intenso",
		},
		Prevention: []string{
			"Lavado frecuente de manos",
			"Evitar contacto con personas resfriadas",
			"No compartir utensilios personales",
		},
		GeneralTreatment: []string{
			"Descongestionantes nasales",
			"Analgésicos para dolor de garganta",
			"Vitamina C (evidencia limitada)",
		},
		TypicalDuration: "7-10 días",
		Contagious:      true,
	},
	{
		ID:                "GASTRITIS",
		Name:              "Gastritis Aguda",
		Description:       "Inflamación de la mucosa gástrica",
		Category:          "Trastorno Digestivo",
		RequiredSymptoms:  []string{"DOLOR_ABDOMINAL", "ACIDEZ"},
		CommonSymptoms:    []string{"NAUSEAS", "PERDIDA_APETITO", "HINCHAZON"},
		OptionalSymptoms:  []string{"VOMITO", "MALESTAR_GENERAL"},
		ExcludingSymptoms: []string{"DIARREA", "FIEBRE"},
		Severity:          SeverityModerada,
		Urgency:           UrgencyConsultaProgramada,
		Recommendations: []string{
			"Evitar alimentos irritantes (picantes, ácidos, fritos)",
			"Comer en pequeñas porciones frecuentes",
			"No consumir alcohol ni tabaco",
			"Evitar antiinflamatorios no esteroideos",
			"Reducir el estrés",
			"No acostarse inmediatamente después de comer",
		},
		WarningSigns: []string{
			"Vómito con sangre",
			"Heces negras o con sangre",
			"Dolor abdominal severo",
			"Pérdida de peso inexplicable",
		},
		Prevention: []string{
			"Evitar comidas muy condimentadas",
			"No saltarse comidas",
			"Controlar el estrés",
			"Limitar café y alcohol",
		},
		GeneralTreatment: []string{
			"Antiácidos",
			"Inhibidores de bomba de protones",
			"Bloqueadores H2",
			"Dieta blanda",
		},
		TypicalDuration: "3-5 días con tratamiento",
		Contagious:      false,
	},
	{
		ID:                "GASTROENTERITIS",
		Name:              "Gastroenteritis Aguda",
		Description:       "Inflamación del tracto gastrointestinal, generalmente de origen viral",
		Category:          "Infección Gastrointestinal",
		RequiredSymptoms:  []string{"DIARREA"},
		CommonSymptoms:    []string{"NAUSEAS", "VOMITO", "DOLOR_ABDOMINAL", "FIEBRE"},
		OptionalSymptoms:  []string{"ESCALOFRIOS", "DOLOR_CABEZA", "FATIGA", "PERDIDA_APETITO"},
		ExcludingSymptoms: nil,
		Severity:          SeverityModerada,
		Urgency:           UrgencyConsultaProgramada,
		Recommendations: []string{
			"Hidratación oral constante (suero oral)",
			"Dieta líquida inicial, luego blanda (arroz, plátano)",
			"Evitar lácteos temporalmente",
			"Descanso adecuado",
			"Lavado de manos frecuente",
		},
		WarningSigns: []string{
			"Deshidratación severa (orina oscura, boca muy seca)",
			"Sangre en heces",
			"Fiebre mayor a 39°C",
			"Vómito que impide hidratación",
			"Dolor abdominal intenso",
			"Síntomas en niños pequeños o adultos mayores",
		},
		Prevention: []string{
			"Lavado de manos antes de comer",
			"Consumir agua potable",
			"Lavar bien frutas y verduras",
			"Cocinar bien los alimentos",
		},
		GeneralTreatment: []string{
			"Soluciones de rehidratación oral",
			"Probióticos",
			"Antieméticos si vómito persistente",
		},
		TypicalDuration: "1-3 días",
		Contagious:      true,
	},
	{
		ID:                "BRONQUITIS",
		Name:              "Bronquitis Aguda",
		Description:       "Inflamación de los bronquios, generalmente posterior a infección viral",
		Category:          "Infección Respiratoria",
		RequiredSymptoms:  []string{"TOS_PRODUCTIVA"},
		CommonSymptoms:    []string{"DIFICULTAD_RESPIRAR", "DOLOR_PECHO", "FATIGA", "SIBILANCIAS"},
		OptionalSymptoms:  []string{"FIEBRE", "DOLOR_GARGANTA", "CONGESTION_NASAL", "DOLOR_CABEZA"},
		ExcludingSymptoms: nil,
		Severity:          SeverityModerada,
		Urgency:           UrgencyConsultaProgramada,
		Recommendations: []string{
			"Reposo relativo",
			"Abundantes líquidos",
			"Usar humidificador",
			"Evitar irritantes (humo, polvo)",
			"No fumar",
			"Toser de manera productiva (no suprimir la tos)",
		},
		WarningSigns: []string{
			"Dificultad respiratoria severa",
			"Fiebre alta persistente",
			"Esputo con sangre",
			"Labios o uñas azulados",
			"Síntomas que duran más de 3 semanas",
		},
		Prevention: []string{
			"No fumar",
			"Evitar contaminación ambiental",
			"Vacuna contra influenza",
			"Lavado de manos",
		},
		GeneralTreatment: []string{
			"Broncodilatadores",
			"Expectorantes",
			"Analgésicos",
			"Antibióticos solo si hay infección bacteriana secundaria",
		},
		TypicalDuration: "10-14 días",
		Contagious:      true,
	},
	{
		ID:                "FARINGITIS",
		Name:              "Faringitis Aguda",
		Description:       "Inflamación de la faringe (garganta)",
		Category:          "Infección Respiratoria",
		RequiredSymptoms:  []string{"DOLOR_GARGANTA"},
		CommonSymptoms:    []string{"FIEBRE", "DOLOR_CABEZA", "DIFICULTAD_TRAGAR"},
		OptionalSymptoms:  []string{"TOS_SECA", "FATIGA", "DOLOR_MUSCULAR", "CONGESTION_NASAL"},
		ExcludingSymptoms: []string{"TOS_PRODUCTIVA", "SIBILANCIAS"},
		Severity:          SeverityLeve,
		Urgency:           UrgencyConsultaProgramada,
		Recommendations: []string{
			"Gárgaras con agua tibia y sal",
			"Pastillas para la garganta",
			"Líquidos tibios (té con miel)",
			"Reposo vocal",
			"Evitar irritantes",
		},
		WarningSigns: []string{
			"Dificultad severa para tragar o respirar",
			"Babeo excesivo",
			"Fiebre muy alta",
			"Ganglios muy inflamados",
			"Erupción cutánea",
		},
		Prevention: []string{
			"Evitar contacto con personas enfermas",
			"No compartir utensilios",
			"Lavado de manos",
		},
		GeneralTreatment: []string{
			"Analgésicos/antipiréticos",
			"Antibióticos (solo si es bacteriana - estreptococo)",
			"Antiinflamatorios",
		},
		TypicalDuration: "5-7 días",
		Contagious:      true,
	},
	{
		ID:                "SINUSITIS",
		Name:              "Sinusitis Aguda",
		Description:       "Inflamación de los senos paranasales",
		Category:          "Infección Respiratoria",
		RequiredSymptoms:  []string{"CONGESTION_NASAL", "DOLOR_CABEZA"},
		CommonSymptoms:    []string{"DOLOR_FACIAL", "PRESION_FACIAL", "TOS_PRODUCTIVA"},
		OptionalSymptoms:  []string{"FIEBRE", "FATIGA", "DOLOR_DENTAL", "MAL_ALIENTO"},
		ExcludingSymptoms: nil,
		Severity:          SeverityModerada,
		Urgency:           UrgencyConsultaProgramada,
		Recommendations: []string{
			"Inhalaciones de vapor",
			"Irrigación nasal con solución salina",
			"Descanso",
			"Hidratación",
			"Compresas tibias en la cara",
		},
		WarningSigns: []string{
			"Síntomas graves o que empeoran",
			"Fiebre alta persistente",
			"Dolor facial severo",
			"Cambios en la visión",
			"Rigidez de cuello",
		},
		Prevention: []string{
			"Tratar alergias adecuadamente",
			"Evitar irritantes nasales",
			"Mantener humedad ambiental",
		},
		GeneralTreatment: []string{
			"Descongestionantes",
			"Antibióticos (si es bacteriana)",
			"Corticoides nasales",
			"Analgésicos",
		},
		TypicalDuration: "7-10 días",
		Contagious:      false,
	},
	{
		ID:                "MIGRANA",
		Name:              "Migraña",
		Description:       "Cefalea intensa recurrente con características específicas",
		Category:          "Trastorno Neurológico",
		RequiredSymptoms:  []string{"DOLOR_CABEZA"},
		CommonSymptoms:    []string{"NAUSEAS", "VISION_BORROSA", "FOTOFOBIA", "SENSIBILIDAD_SONIDO"},
		OptionalSymptoms:  []string{"VOMITO", "MAREOS", "FATIGA"},
		ExcludingSymptoms: []string{"FIEBRE", "TOS_PRODUCTIVA", "CONGESTION_NASAL"},
		Severity:          SeverityModerada,
		Urgency:           UrgencyConsultaProgramada,
		Recommendations: []string{
			"Descansar en ambiente oscuro y silencioso",
			"Aplicar compresas frías en la cabeza",
			"Evitar desencadenantes conocidos",
			"Mantener horarios regulares de sueño",
			"Hidratación adecuada",
		},
		WarningSigns: []string{
			"Primer episodio severo",
			"Cambio en patrón de migrañas",
			"Dolor de cabeza súbito y explosivo",
			"Síntomas neurológicos nuevos",
			"Fiebre acompañante",
		},
		Prevention: []string{
			"Identificar y evitar desencadenantes",
			"Dormir regularmente",
			"Ejercicio regular",
			"Manejo del estrés",
			"Dieta equilibrada",
		},
		GeneralTreatment: []string{
			"Analgésicos específicos (triptanes)",
			"Antiinflamatorios",
			"Antieméticos",
			"Tratamiento preventivo si es frecuente",
		},
		TypicalDuration: "4-72 horas por episodio",
		Contagious:      false,
	},
	{
		ID:                "ITU",
		Name:              "Infección del Tracto Urinario",
		Description:       "Infección bacteriana del sistema urinario",
		Category:          "Infección Urinaria",
		RequiredSymptoms:  []string{"DOLOR_ORINAR"},
		CommonSymptoms:    []string{"FRECUENCIA_URINARIA", "URGENCIA_URINARIA", "ORINA_TURBIA"},
		OptionalSymptoms:  []string{"DOLOR_ABDOMINAL_BAJO", "FIEBRE", "ESCALOFRIOS"},
		ExcludingSymptoms: []string{"TOS_PRODUCTIVA", "CONGESTION_NASAL"},
		Severity:          SeverityModerada,
		Urgency:           UrgencyConsultaUrgente,
		Recommendations: []string{
			"Beber abundante agua (2-3 litros al día)",
			"Orinar frecuentemente, no retener",
			"Evitar irritantes (café, alcohol)",
			"Aplicar calor en abdomen bajo",
			"Mantener higiene adecuada",
		},
		WarningSigns: []string{
			"Fiebre alta",
			"Dolor lumbar intenso",
			"Sangre en orina",
			"Náuseas y vómitos",
			"Síntomas en embarazadas",
		},
		Prevention: []string{
			"Hidratación adecuada",
			"Orinar después de relaciones sexuales",
			"Limpieza de adelante hacia atrás",
			"Evitar productos irritantes vaginales",
			"No retener orina",
		},
		GeneralTreatment: []string{
			"Antibióticos específicos",
			"Analgésicos urinarios",
			"Abundantes líquidos",
		},
		TypicalDuration: "3-5 días con tratamiento",
		Contagious:      false,
	},
	{
		ID:                "CONJUNTIVITIS",
		Name:              "Conjuntivitis",
		Description:       "Inflamación de la conjuntiva del ojo",
		Category:          "Infección Oftalmológica",
		RequiredSymptoms:  []string{"OJOS_ROJOS"},
		CommonSymptoms:    []string{"PICAZON_OJOS", "LAGRIMEO", "SECRECION_OCULAR"},
		OptionalSymptoms:  []string{"VISION_BORROSA", "FOTOFOBIA"},
		ExcludingSymptoms: []string{"FIEBRE", "TOS_PRODUCTIVA"},
		Severity:          SeverityLeve,
		Urgency:           UrgencyConsultaProgramada,
		Recommendations: []string{
			"Limpiar ojos con agua hervida fría",
			"No tocar ni frotar los ojos",
			"Lavado frecuente de manos",
			"No compartir toallas",
			"Evitar maquillaje ocular",
			"No usar lentes de contacto",
		},
		WarningSigns: []string{
			"Dolor ocular intenso",
			"Pérdida de visión",
			"Sensibilidad extrema a la luz",
			"Síntomas que empeoran",
		},
		Prevention: []string{
			"Lavado de manos frecuente",
			"No compartir artículos personales",
			"Evitar tocarse los ojos",
		},
		GeneralTreatment: []string{
			"Colirios antibióticos (si es bacteriana)",
			"Lágrimas artificiales",
			"Compresas frías",
		},
		TypicalDuration: "7-10 días",
		Contagious:      true,
	},
}
