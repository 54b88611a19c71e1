package constvars

const (
	URLParamPatientID  = "id"
	URLParamSearchKey  = "key"
	URLParamUploadName = "*"
)

const (
	FormFieldName           = "name"
	FormFieldEmail          = "email"
	FormFieldPhone          = "phone"
	FormFieldAge            = "age"
	FormFieldGender         = "gender"
	FormFieldAddress        = "address"
	FormFieldDisease        = "disease"
	FormFieldAssignedDoctor = "assignedDoctor"
	FormFieldImage          = "image"
	FormFieldID             = "id"
	FormFieldMongoID        = "_id"
)

// DoctorReferenceSentinels are placeholder values clients send instead of
// leaving assignedDoctor out. They all mean "no doctor".
var DoctorReferenceSentinels = map[string]bool{
	"":          true,
	"null":      true,
	"undefined": true,
}

var ImageAllowedContentTypes = map[string]bool{
	MIMEImageJPEG: true,
	MIMEImagePNG:  true,
	MIMEImageGIF:  true,
	MIMEImageWEBP: true,
}
