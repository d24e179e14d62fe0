package gql

// Operation names. Each document below declares exactly one named operation.
const (
	OpAgendaItemsByOrganization          = "AgendaItemsByOrganization"
	OpGetAgendaItem                      = "GetAgendaItem"
	OpGetAllAgendaItems                  = "GetAllAgendaItems"
	OpAgendaItemCategoriesByOrganization = "AgendaItemCategoriesByOrganization"
	OpAgendaItemCategory                 = "AgendaItemCategory"
	OpOrganizationMembers                = "OrganizationMembers"
	OpGetAgendaSection                   = "GetAgendaSection"

	OpCreateAgendaItem         = "CreateAgendaItem"
	OpUpdateAgendaItem         = "UpdateAgendaItem"
	OpRemoveAgendaItem         = "RemoveAgendaItem"
	OpCreateAgendaItemCategory = "CreateAgendaItemCategory"
	OpUpdateAgendaItemCategory = "UpdateAgendaItemCategory"
	OpCreateAgendaSection      = "CreateAgendaSection"
	OpUpdateAgendaSection      = "UpdateAgendaSection"
	OpRemoveAgendaSection      = "RemoveAgendaSection"
)

const agendaItemFields = `
	_id
	assignee {
		_id
		firstName
		lastName
	}
	assigner {
		_id
		firstName
		lastName
	}
	creator {
		_id
		firstName
		lastName
	}
	agendaItemCategory {
		_id
		name
	}
	preCompletionNotes
	postCompletionNotes
	assignmentDate
	dueDate
	completionDate
	createdAt
	isCompleted
	event {
		_id
		title
	}
`

// Queries

const agendaItemsByOrganizationQuery = `
	query AgendaItemsByOrganization(
		$organizationId: ID!
		$agendaItemCategoryId: ID
		$eventId: ID
		$orderBy: AgendaItemsOrderByInput
		$isActive: Boolean
		$isCompleted: Boolean
	) {
		agendaItemsByOrganization(
			organizationId: $organizationId
			orderBy: $orderBy
			where: {
				agendaItemCategory_id: $agendaItemCategoryId
				event_id: $eventId
				is_active: $isActive
				is_completed: $isCompleted
			}
		) {` + agendaItemFields + `}
	}
`

const getAgendaItemQuery = `
	query GetAgendaItem($getAgendaItemId: ID!) {
		getAgendaItem(id: $getAgendaItemId) {` + agendaItemFields + `}
	}
`

const getAllAgendaItemsQuery = `
	query GetAllAgendaItems {
		getAllAgendaItems {` + agendaItemFields + `}
	}
`

const agendaItemCategoriesByOrganizationQuery = `
	query AgendaItemCategoriesByOrganization($organizationId: ID!) {
		agendaItemCategoriesByOrganization(organizationId: $organizationId) {
			_id
			name
			description
			isDisabled
		}
	}
`

const agendaItemCategoryQuery = `
	query AgendaItemCategory($agendaItemCategoryId: ID!) {
		agendaItemCategory(id: $agendaItemCategoryId) {
			_id
			name
			description
			isDisabled
		}
	}
`

const organizationMembersQuery = `
	query OrganizationMembers($id: ID!) {
		organizations(id: $id) {
			_id
			members {
				_id
				firstName
				lastName
				email
			}
		}
	}
`

const getAgendaSectionQuery = `
	query GetAgendaSection($getAgendaSectionId: ID!) {
		getAgendaSection(id: $getAgendaSectionId) {
			_id
			description
			sequence
			relatedEvent {
				_id
				title
			}
			items {
				_id
			}
		}
	}
`

// Mutations

const createAgendaItemMutation = `
	mutation CreateAgendaItem(
		$assigneeId: ID!
		$agendaItemCategoryId: ID!
		$preCompletionNotes: String
		$dueDate: Date
		$eventId: ID
	) {
		createAgendaItem(
			agendaItemCategoryId: $agendaItemCategoryId
			data: {
				assigneeId: $assigneeId
				preCompletionNotes: $preCompletionNotes
				dueDate: $dueDate
				eventId: $eventId
			}
		) {
			_id
		}
	}
`

const updateAgendaItemMutation = `
	mutation UpdateAgendaItem(
		$agendaItemId: ID!
		$assigneeId: ID
		$preCompletionNotes: String
		$postCompletionNotes: String
		$dueDate: Date
		$completionDate: Date
		$isCompleted: Boolean
	) {
		updateAgendaItem(
			id: $agendaItemId
			data: {
				assigneeId: $assigneeId
				preCompletionNotes: $preCompletionNotes
				postCompletionNotes: $postCompletionNotes
				dueDate: $dueDate
				completionDate: $completionDate
				isCompleted: $isCompleted
			}
		) {
			_id
		}
	}
`

const removeAgendaItemMutation = `
	mutation RemoveAgendaItem($agendaItemId: ID!) {
		removeAgendaItem(id: $agendaItemId) {
			_id
		}
	}
`

const createAgendaItemCategoryMutation = `
	mutation CreateAgendaItemCategory($name: String!, $organizationId: ID!) {
		createAgendaItemCategory(name: $name, organizationId: $organizationId) {
			_id
		}
	}
`

const updateAgendaItemCategoryMutation = `
	mutation UpdateAgendaItemCategory(
		$agendaItemCategoryId: ID!
		$name: String
		$isDisabled: Boolean
	) {
		updateAgendaItemCategory(
			id: $agendaItemCategoryId
			data: { name: $name, isDisabled: $isDisabled }
		) {
			_id
		}
	}
`

const createAgendaSectionMutation = `
	mutation CreateAgendaSection($input: CreateAgendaSectionInput!) {
		createAgendaSection(input: $input) {
			_id
		}
	}
`

const updateAgendaSectionMutation = `
	mutation UpdateAgendaSection(
		$updateAgendaSectionId: ID!
		$input: UpdateAgendaSectionInput!
	) {
		updateAgendaSection(id: $updateAgendaSectionId, input: $input) {
			_id
		}
	}
`

const removeAgendaSectionMutation = `
	mutation RemoveAgendaSection($removeAgendaSectionId: ID!) {
		removeAgendaSection(id: $removeAgendaSectionId)
	}
`
