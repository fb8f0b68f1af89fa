package ifc

// Enumeration domains referenced by the entity tables. Values are the
// uppercase spellings that appear between dots in STEP files.

var (
	compositionEnum = []string{"COMPLEX", "ELEMENT", "PARTIAL"}

	spaceTypeEnum = []string{"SPACE", "PARKING", "GFA", "INTERNAL", "EXTERNAL", "USERDEFINED", "NOTDEFINED"}

	wallTypeEnum = []string{
		"MOVABLE", "PARAPET", "PARTITIONING", "PLUMBINGWALL", "SHEAR",
		"SOLIDWALL", "STANDARD", "POLYGONAL", "ELEMENTEDWALL",
		"USERDEFINED", "NOTDEFINED",
	}

	slabTypeEnum = []string{"FLOOR", "ROOF", "LANDING", "BASESLAB", "USERDEFINED", "NOTDEFINED"}

	beamTypeEnum = []string{"BEAM", "JOIST", "HOLLOWCORE", "LINTEL", "SPANDREL", "T_BEAM", "USERDEFINED", "NOTDEFINED"}

	columnTypeEnum = []string{"COLUMN", "PILASTER", "USERDEFINED", "NOTDEFINED"}

	doorTypeEnum = []string{"DOOR", "GATE", "TRAPDOOR", "USERDEFINED", "NOTDEFINED"}

	doorOperationEnum = []string{
		"SINGLE_SWING_LEFT", "SINGLE_SWING_RIGHT", "DOUBLE_DOOR_SINGLE_SWING",
		"DOUBLE_DOOR_SINGLE_SWING_OPPOSITE_LEFT", "DOUBLE_DOOR_SINGLE_SWING_OPPOSITE_RIGHT",
		"DOUBLE_SWING_LEFT", "DOUBLE_SWING_RIGHT", "DOUBLE_DOOR_DOUBLE_SWING",
		"SLIDING_TO_LEFT", "SLIDING_TO_RIGHT", "DOUBLE_DOOR_SLIDING",
		"FOLDING_TO_LEFT", "FOLDING_TO_RIGHT", "DOUBLE_DOOR_FOLDING",
		"REVOLVING", "ROLLINGUP", "SWING_FIXED_LEFT", "SWING_FIXED_RIGHT",
		"USERDEFINED", "NOTDEFINED",
	}

	windowTypeEnum = []string{"WINDOW", "SKYLIGHT", "LIGHTDOME", "USERDEFINED", "NOTDEFINED"}

	windowPartitioningEnum = []string{
		"SINGLE_PANEL", "DOUBLE_PANEL_VERTICAL", "DOUBLE_PANEL_HORIZONTAL",
		"TRIPLE_PANEL_VERTICAL", "TRIPLE_PANEL_BOTTOM", "TRIPLE_PANEL_TOP",
		"TRIPLE_PANEL_LEFT", "TRIPLE_PANEL_RIGHT", "TRIPLE_PANEL_HORIZONTAL",
		"USERDEFINED", "NOTDEFINED",
	}

	roofTypeEnum = []string{
		"FLAT_ROOF", "SHED_ROOF", "GABLE_ROOF", "HIP_ROOF", "HIPPED_GABLE_ROOF",
		"GAMBREL_ROOF", "MANSARD_ROOF", "BARREL_ROOF", "RAINBOW_ROOF",
		"BUTTERFLY_ROOF", "PAVILION_ROOF", "DOME_ROOF", "FREEFORM",
		"USERDEFINED", "NOTDEFINED",
	}

	stairTypeEnum = []string{
		"STRAIGHT_RUN_STAIR", "TWO_STRAIGHT_RUN_STAIR", "QUARTER_WINDING_STAIR",
		"QUARTER_TURN_STAIR", "HALF_WINDING_STAIR", "HALF_TURN_STAIR",
		"TWO_QUARTER_WINDING_STAIR", "TWO_QUARTER_TURN_STAIR",
		"THREE_QUARTER_WINDING_STAIR", "THREE_QUARTER_TURN_STAIR",
		"SPIRAL_STAIR", "DOUBLE_RETURN_STAIR", "CURVED_RUN_STAIR",
		"TWO_CURVED_RUN_STAIR", "USERDEFINED", "NOTDEFINED",
	}

	railingTypeEnum = []string{"HANDRAIL", "GUARDRAIL", "BALUSTRADE", "USERDEFINED", "NOTDEFINED"}

	coveringTypeEnum = []string{
		"CEILING", "FLOORING", "CLADDING", "ROOFING", "MOLDING", "SKIRTINGBOARD",
		"INSULATION", "MEMBRANE", "SLEEVING", "WRAPPING", "USERDEFINED", "NOTDEFINED",
	}

	curtainWallTypeEnum = []string{"USERDEFINED", "NOTDEFINED"}

	plateTypeEnum = []string{"CURTAIN_PANEL", "SHEET", "USERDEFINED", "NOTDEFINED"}

	memberTypeEnum = []string{
		"BRACE", "CHORD", "COLLAR", "MEMBER", "MULLION", "PLATE", "POST",
		"PURLIN", "RAFTER", "STRINGER", "STRUT", "STUD", "USERDEFINED", "NOTDEFINED",
	}

	footingTypeEnum = []string{
		"CAISSON_FOUNDATION", "FOOTING_BEAM", "PAD_FOOTING", "PILE_CAP",
		"STRIP_FOOTING", "USERDEFINED", "NOTDEFINED",
	}

	openingElementEnum = []string{"OPENING", "RECESS", "USERDEFINED", "NOTDEFINED"}

	proxyTypeEnum = []string{
		"COMPLEX", "ELEMENT", "PARTIAL", "PROVISIONFORVOID", "PROVISIONFORSPACE",
		"USERDEFINED", "NOTDEFINED",
	}

	furnitureTypeEnum = []string{
		"CHAIR", "TABLE", "DESK", "BED", "FILECABINET", "SHELF", "SOFA",
		"USERDEFINED", "NOTDEFINED",
	}

	assemblyPlaceEnum = []string{"SITE", "FACTORY", "NOTDEFINED"}

	elementAssemblyEnum = []string{
		"ACCESSORY_ASSEMBLY", "ARCH", "BEAM_GRID", "BRACED_FRAME", "GIRDER",
		"REINFORCEMENT_UNIT", "RIGID_FRAME", "SLAB_FIELD", "TRUSS",
		"USERDEFINED", "NOTDEFINED",
	}

	accessStateEnum = []string{"READWRITE", "READONLY", "LOCKED", "READWRITELOCKED", "READONLYLOCKED"}

	changeActionEnum = []string{"NOCHANGE", "MODIFIED", "ADDED", "DELETED", "NOTDEFINED"}
)

// schemaDefs is the curated IFC4 subset. Attrs hold only the attributes
// each entity declares itself; argument positions follow from the
// supertype chain. Attribute names and order match the IFC4
// specification so positional access lines up with real files.
var schemaDefs = []EntityDef{
	// Kernel and core abstract layers.
	{Name: "IfcRoot", Abstract: true, Attrs: []AttrDef{
		{Name: "GlobalId", Type: AttrString},
		{Name: "OwnerHistory", Type: AttrRef, Optional: true},
		{Name: "Name", Type: AttrString, Optional: true},
		{Name: "Description", Type: AttrString, Optional: true},
	}},
	{Name: "IfcObjectDefinition", Supertype: "IfcRoot", Abstract: true},
	{Name: "IfcObject", Supertype: "IfcObjectDefinition", Abstract: true, Attrs: []AttrDef{
		{Name: "ObjectType", Type: AttrString, Optional: true},
	}},
	{Name: "IfcContext", Supertype: "IfcObjectDefinition", Abstract: true, Attrs: []AttrDef{
		{Name: "ObjectType", Type: AttrString, Optional: true},
		{Name: "LongName", Type: AttrString, Optional: true},
		{Name: "Phase", Type: AttrString, Optional: true},
		{Name: "RepresentationContexts", Type: AttrList, Optional: true},
		{Name: "UnitsInContext", Type: AttrRef, Optional: true},
	}},
	{Name: "IfcProject", Supertype: "IfcContext"},
	{Name: "IfcProduct", Supertype: "IfcObject", Abstract: true, Attrs: []AttrDef{
		{Name: "ObjectPlacement", Type: AttrRef, Optional: true},
		{Name: "Representation", Type: AttrRef, Optional: true},
	}},

	// Spatial structure.
	{Name: "IfcSpatialElement", Supertype: "IfcProduct", Abstract: true, Attrs: []AttrDef{
		{Name: "LongName", Type: AttrString, Optional: true},
	}},
	{Name: "IfcSpatialStructureElement", Supertype: "IfcSpatialElement", Abstract: true, Attrs: []AttrDef{
		{Name: "CompositionType", Type: AttrEnum, Optional: true, Enum: compositionEnum},
	}},
	{Name: "IfcSite", Supertype: "IfcSpatialStructureElement", Attrs: []AttrDef{
		{Name: "RefLatitude", Type: AttrList, Optional: true},
		{Name: "RefLongitude", Type: AttrList, Optional: true},
		{Name: "RefElevation", Type: AttrReal, Optional: true},
		{Name: "LandTitleNumber", Type: AttrString, Optional: true},
		{Name: "SiteAddress", Type: AttrRef, Optional: true},
	}},
	{Name: "IfcBuilding", Supertype: "IfcSpatialStructureElement", Attrs: []AttrDef{
		{Name: "ElevationOfRefHeight", Type: AttrReal, Optional: true},
		{Name: "ElevationOfTerrain", Type: AttrReal, Optional: true},
		{Name: "BuildingAddress", Type: AttrRef, Optional: true},
	}},
	{Name: "IfcBuildingStorey", Supertype: "IfcSpatialStructureElement", Attrs: []AttrDef{
		{Name: "Elevation", Type: AttrReal, Optional: true},
	}},
	{Name: "IfcSpace", Supertype: "IfcSpatialStructureElement", Attrs: []AttrDef{
		{Name: "PredefinedType", Type: AttrEnum, Optional: true, Enum: spaceTypeEnum},
		{Name: "ElevationWithFlooring", Type: AttrReal, Optional: true},
	}},

	// Elements.
	{Name: "IfcElement", Supertype: "IfcProduct", Abstract: true, Attrs: []AttrDef{
		{Name: "Tag", Type: AttrString, Optional: true},
	}},
	{Name: "IfcBuildingElement", Supertype: "IfcElement", Abstract: true},
	{Name: "IfcWall", Supertype: "IfcBuildingElement", Attrs: []AttrDef{
		{Name: "PredefinedType", Type: AttrEnum, Optional: true, Enum: wallTypeEnum},
	}},
	{Name: "IfcWallStandardCase", Supertype: "IfcWall"},
	{Name: "IfcSlab", Supertype: "IfcBuildingElement", Attrs: []AttrDef{
		{Name: "PredefinedType", Type: AttrEnum, Optional: true, Enum: slabTypeEnum},
	}},
	{Name: "IfcBeam", Supertype: "IfcBuildingElement", Attrs: []AttrDef{
		{Name: "PredefinedType", Type: AttrEnum, Optional: true, Enum: beamTypeEnum},
	}},
	{Name: "IfcColumn", Supertype: "IfcBuildingElement", Attrs: []AttrDef{
		{Name: "PredefinedType", Type: AttrEnum, Optional: true, Enum: columnTypeEnum},
	}},
	{Name: "IfcDoor", Supertype: "IfcBuildingElement", Attrs: []AttrDef{
		{Name: "OverallHeight", Type: AttrReal, Optional: true},
		{Name: "OverallWidth", Type: AttrReal, Optional: true},
		{Name: "PredefinedType", Type: AttrEnum, Optional: true, Enum: doorTypeEnum},
		{Name: "OperationType", Type: AttrEnum, Optional: true, Enum: doorOperationEnum},
		{Name: "UserDefinedOperationType", Type: AttrString, Optional: true},
	}},
	{Name: "IfcWindow", Supertype: "IfcBuildingElement", Attrs: []AttrDef{
		{Name: "OverallHeight", Type: AttrReal, Optional: true},
		{Name: "OverallWidth", Type: AttrReal, Optional: true},
		{Name: "PredefinedType", Type: AttrEnum, Optional: true, Enum: windowTypeEnum},
		{Name: "PartitioningType", Type: AttrEnum, Optional: true, Enum: windowPartitioningEnum},
		{Name: "UserDefinedPartitioningType", Type: AttrString, Optional: true},
	}},
	{Name: "IfcRoof", Supertype: "IfcBuildingElement", Attrs: []AttrDef{
		{Name: "PredefinedType", Type: AttrEnum, Optional: true, Enum: roofTypeEnum},
	}},
	{Name: "IfcStair", Supertype: "IfcBuildingElement", Attrs: []AttrDef{
		{Name: "PredefinedType", Type: AttrEnum, Optional: true, Enum: stairTypeEnum},
	}},
	{Name: "IfcRailing", Supertype: "IfcBuildingElement", Attrs: []AttrDef{
		{Name: "PredefinedType", Type: AttrEnum, Optional: true, Enum: railingTypeEnum},
	}},
	{Name: "IfcCovering", Supertype: "IfcBuildingElement", Attrs: []AttrDef{
		{Name: "PredefinedType", Type: AttrEnum, Optional: true, Enum: coveringTypeEnum},
	}},
	{Name: "IfcCurtainWall", Supertype: "IfcBuildingElement", Attrs: []AttrDef{
		{Name: "PredefinedType", Type: AttrEnum, Optional: true, Enum: curtainWallTypeEnum},
	}},
	{Name: "IfcPlate", Supertype: "IfcBuildingElement", Attrs: []AttrDef{
		{Name: "PredefinedType", Type: AttrEnum, Optional: true, Enum: plateTypeEnum},
	}},
	{Name: "IfcMember", Supertype: "IfcBuildingElement", Attrs: []AttrDef{
		{Name: "PredefinedType", Type: AttrEnum, Optional: true, Enum: memberTypeEnum},
	}},
	{Name: "IfcFooting", Supertype: "IfcBuildingElement", Attrs: []AttrDef{
		{Name: "PredefinedType", Type: AttrEnum, Optional: true, Enum: footingTypeEnum},
	}},
	{Name: "IfcBuildingElementProxy", Supertype: "IfcBuildingElement", Attrs: []AttrDef{
		{Name: "PredefinedType", Type: AttrEnum, Optional: true, Enum: proxyTypeEnum},
	}},
	{Name: "IfcElementAssembly", Supertype: "IfcElement", Attrs: []AttrDef{
		{Name: "AssemblyPlace", Type: AttrEnum, Optional: true, Enum: assemblyPlaceEnum},
		{Name: "PredefinedType", Type: AttrEnum, Optional: true, Enum: elementAssemblyEnum},
	}},
	{Name: "IfcFeatureElement", Supertype: "IfcElement", Abstract: true},
	{Name: "IfcFeatureElementSubtraction", Supertype: "IfcFeatureElement", Abstract: true},
	{Name: "IfcOpeningElement", Supertype: "IfcFeatureElementSubtraction", Attrs: []AttrDef{
		{Name: "PredefinedType", Type: AttrEnum, Optional: true, Enum: openingElementEnum},
	}},
	{Name: "IfcFurnishingElement", Supertype: "IfcElement"},
	{Name: "IfcFurniture", Supertype: "IfcFurnishingElement", Attrs: []AttrDef{
		{Name: "PredefinedType", Type: AttrEnum, Optional: true, Enum: furnitureTypeEnum},
	}},
	{Name: "IfcDistributionElement", Supertype: "IfcElement"},
	{Name: "IfcDistributionFlowElement", Supertype: "IfcDistributionElement"},
	{Name: "IfcFlowTerminal", Supertype: "IfcDistributionFlowElement"},

	// Groups.
	{Name: "IfcGroup", Supertype: "IfcObject"},
	{Name: "IfcSystem", Supertype: "IfcGroup"},
	{Name: "IfcZone", Supertype: "IfcSystem", Attrs: []AttrDef{
		{Name: "LongName", Type: AttrString, Optional: true},
	}},

	// Relationships.
	{Name: "IfcRelationship", Supertype: "IfcRoot", Abstract: true},
	{Name: "IfcRelDecomposes", Supertype: "IfcRelationship", Abstract: true},
	{Name: "IfcRelAggregates", Supertype: "IfcRelDecomposes", Attrs: []AttrDef{
		{Name: "RelatingObject", Type: AttrRef},
		{Name: "RelatedObjects", Type: AttrList},
	}},
	{Name: "IfcRelNests", Supertype: "IfcRelDecomposes", Attrs: []AttrDef{
		{Name: "RelatingObject", Type: AttrRef},
		{Name: "RelatedObjects", Type: AttrList},
	}},
	{Name: "IfcRelConnects", Supertype: "IfcRelationship", Abstract: true},
	{Name: "IfcRelContainedInSpatialStructure", Supertype: "IfcRelConnects", Attrs: []AttrDef{
		{Name: "RelatedElements", Type: AttrList},
		{Name: "RelatingStructure", Type: AttrRef},
	}},
	{Name: "IfcRelVoidsElement", Supertype: "IfcRelConnects", Attrs: []AttrDef{
		{Name: "RelatingBuildingElement", Type: AttrRef},
		{Name: "RelatedOpeningElement", Type: AttrRef},
	}},
	{Name: "IfcRelFillsElement", Supertype: "IfcRelConnects", Attrs: []AttrDef{
		{Name: "RelatingOpeningElement", Type: AttrRef},
		{Name: "RelatedBuildingElement", Type: AttrRef},
	}},
	{Name: "IfcRelDefines", Supertype: "IfcRelationship", Abstract: true},
	{Name: "IfcRelDefinesByProperties", Supertype: "IfcRelDefines", Attrs: []AttrDef{
		{Name: "RelatedObjects", Type: AttrList},
		{Name: "RelatingPropertyDefinition", Type: AttrRef},
	}},
	{Name: "IfcRelDefinesByType", Supertype: "IfcRelDefines", Attrs: []AttrDef{
		{Name: "RelatedObjects", Type: AttrList},
		{Name: "RelatingType", Type: AttrRef},
	}},
	{Name: "IfcRelAssociates", Supertype: "IfcRelationship", Abstract: true, Attrs: []AttrDef{
		{Name: "RelatedObjects", Type: AttrList},
	}},
	{Name: "IfcRelAssociatesMaterial", Supertype: "IfcRelAssociates", Attrs: []AttrDef{
		{Name: "RelatingMaterial", Type: AttrRef},
	}},
	{Name: "IfcRelAssociatesClassification", Supertype: "IfcRelAssociates", Attrs: []AttrDef{
		{Name: "RelatingClassification", Type: AttrRef},
	}},

	// Property sets.
	{Name: "IfcPropertyDefinition", Supertype: "IfcRoot", Abstract: true},
	{Name: "IfcPropertySetDefinition", Supertype: "IfcPropertyDefinition", Abstract: true},
	{Name: "IfcPropertySet", Supertype: "IfcPropertySetDefinition", Attrs: []AttrDef{
		{Name: "HasProperties", Type: AttrList},
	}},
	{Name: "IfcProperty", Abstract: true, Attrs: []AttrDef{
		{Name: "Name", Type: AttrString},
		{Name: "Description", Type: AttrString, Optional: true},
	}},
	{Name: "IfcSimpleProperty", Supertype: "IfcProperty", Abstract: true},
	{Name: "IfcPropertySingleValue", Supertype: "IfcSimpleProperty", Attrs: []AttrDef{
		{Name: "NominalValue", Type: AttrSelect, Optional: true},
		{Name: "Unit", Type: AttrRef, Optional: true},
	}},

	// Quantity sets.
	{Name: "IfcQuantitySet", Supertype: "IfcPropertySetDefinition", Abstract: true},
	{Name: "IfcElementQuantity", Supertype: "IfcQuantitySet", Attrs: []AttrDef{
		{Name: "MethodOfMeasurement", Type: AttrString, Optional: true},
		{Name: "Quantities", Type: AttrList},
	}},
	{Name: "IfcPhysicalQuantity", Abstract: true, Attrs: []AttrDef{
		{Name: "Name", Type: AttrString},
		{Name: "Description", Type: AttrString, Optional: true},
	}},
	{Name: "IfcPhysicalSimpleQuantity", Supertype: "IfcPhysicalQuantity", Abstract: true, Attrs: []AttrDef{
		{Name: "Unit", Type: AttrRef, Optional: true},
	}},
	{Name: "IfcQuantityLength", Supertype: "IfcPhysicalSimpleQuantity", Attrs: []AttrDef{
		{Name: "LengthValue", Type: AttrReal},
		{Name: "Formula", Type: AttrString, Optional: true},
	}},
	{Name: "IfcQuantityArea", Supertype: "IfcPhysicalSimpleQuantity", Attrs: []AttrDef{
		{Name: "AreaValue", Type: AttrReal},
		{Name: "Formula", Type: AttrString, Optional: true},
	}},
	{Name: "IfcQuantityVolume", Supertype: "IfcPhysicalSimpleQuantity", Attrs: []AttrDef{
		{Name: "VolumeValue", Type: AttrReal},
		{Name: "Formula", Type: AttrString, Optional: true},
	}},
	{Name: "IfcQuantityCount", Supertype: "IfcPhysicalSimpleQuantity", Attrs: []AttrDef{
		{Name: "CountValue", Type: AttrReal},
		{Name: "Formula", Type: AttrString, Optional: true},
	}},
	{Name: "IfcQuantityWeight", Supertype: "IfcPhysicalSimpleQuantity", Attrs: []AttrDef{
		{Name: "WeightValue", Type: AttrReal},
		{Name: "Formula", Type: AttrString, Optional: true},
	}},
	{Name: "IfcQuantityTime", Supertype: "IfcPhysicalSimpleQuantity", Attrs: []AttrDef{
		{Name: "TimeValue", Type: AttrReal},
		{Name: "Formula", Type: AttrString, Optional: true},
	}},

	// Type objects.
	{Name: "IfcTypeObject", Supertype: "IfcObjectDefinition", Attrs: []AttrDef{
		{Name: "ApplicableOccurrence", Type: AttrString, Optional: true},
		{Name: "HasPropertySets", Type: AttrList, Optional: true},
	}},
	{Name: "IfcTypeProduct", Supertype: "IfcTypeObject", Attrs: []AttrDef{
		{Name: "RepresentationMaps", Type: AttrList, Optional: true},
		{Name: "Tag", Type: AttrString, Optional: true},
	}},
	{Name: "IfcElementType", Supertype: "IfcTypeProduct", Abstract: true, Attrs: []AttrDef{
		{Name: "ElementType", Type: AttrString, Optional: true},
	}},
	{Name: "IfcBuildingElementType", Supertype: "IfcElementType", Abstract: true},
	{Name: "IfcWallType", Supertype: "IfcBuildingElementType", Attrs: []AttrDef{
		{Name: "PredefinedType", Type: AttrEnum, Enum: wallTypeEnum},
	}},
	{Name: "IfcSlabType", Supertype: "IfcBuildingElementType", Attrs: []AttrDef{
		{Name: "PredefinedType", Type: AttrEnum, Enum: slabTypeEnum},
	}},
	{Name: "IfcDoorType", Supertype: "IfcBuildingElementType", Attrs: []AttrDef{
		{Name: "PredefinedType", Type: AttrEnum, Enum: doorTypeEnum},
		{Name: "OperationType", Type: AttrEnum, Enum: doorOperationEnum},
		{Name: "ParameterTakesPrecedence", Type: AttrBool, Optional: true},
		{Name: "UserDefinedOperationType", Type: AttrString, Optional: true},
	}},
	{Name: "IfcWindowType", Supertype: "IfcBuildingElementType", Attrs: []AttrDef{
		{Name: "PredefinedType", Type: AttrEnum, Enum: windowTypeEnum},
		{Name: "PartitioningType", Type: AttrEnum, Enum: windowPartitioningEnum},
		{Name: "ParameterTakesPrecedence", Type: AttrBool, Optional: true},
		{Name: "UserDefinedPartitioningType", Type: AttrString, Optional: true},
	}},

	// Ownership.
	{Name: "IfcOwnerHistory", Attrs: []AttrDef{
		{Name: "OwningUser", Type: AttrRef},
		{Name: "OwningApplication", Type: AttrRef},
		{Name: "State", Type: AttrEnum, Optional: true, Enum: accessStateEnum},
		{Name: "ChangeAction", Type: AttrEnum, Optional: true, Enum: changeActionEnum},
		{Name: "LastModifiedDate", Type: AttrInt, Optional: true},
		{Name: "LastModifyingUser", Type: AttrRef, Optional: true},
		{Name: "LastModifyingApplication", Type: AttrRef, Optional: true},
		{Name: "CreationDate", Type: AttrInt},
	}},
}
